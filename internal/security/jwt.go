package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

// TokenProvider issues and verifies HS256 bearer tokens. Tokens are
// stateless: there is no revocation before expiry, only the TTL bounds how
// long a stolen token stays valid.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{secret: []byte(secret), ttl: ttl}
}

// Claims is what a verified token resolves to: the principal's identifier
// (CEO name, or HR/candidate email) and its role.
type Claims struct {
	Subject string
	Role    models.Role
}

func (p *TokenProvider) Issue(subject string, role models.Role) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(p.ttl).Unix(),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to sign token", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Malformed, tampered and expired tokens all come back as invalid_token;
// no business-logic failures originate here.
func (p *TokenProvider) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, common.NewError(common.CodeInvalidToken, "Invalid token", err)
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, common.NewError(common.CodeInvalidToken, "Invalid token", nil)
	}
	subject, _ := mapClaims["sub"].(string)
	roleValue, _ := mapClaims["role"].(string)
	if subject == "" || roleValue == "" {
		return nil, common.NewError(common.CodeInvalidToken, "Invalid token", nil)
	}
	role, err := models.ParseRole(roleValue)
	if err != nil {
		return nil, common.NewError(common.CodeInvalidToken, "Invalid token", err)
	}
	return &Claims{Subject: subject, Role: role}, nil
}
