package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
	"github.com/theinterviewer/backend/internal/security"
	"github.com/theinterviewer/backend/internal/services"
)

const principalKey = "principal"

type AuthMiddleware struct {
	tokens   *security.TokenProvider
	resolver *services.PrincipalResolver
}

func NewAuthMiddleware(tokens *security.TokenProvider, resolver *services.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, resolver: resolver}
}

// Authenticate extracts the bearer token, verifies it and resolves the
// claims to a live account row. The principal lands in the gin context for
// handlers; a token whose account has since been deleted is rejected here.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}
		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			AbortWithError(c, err)
			return
		}
		principal, err := m.resolver.Resolve(c.Request.Context(), claims.Role, claims.Subject)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Checks are flat: the CEO is
// not implicitly allowed onto HR or candidate routes, and vice versa. The
// message surfaces verbatim on a mismatch.
func RequireRole(message string, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
	}
}

func PrincipalFromContext(c *gin.Context) (*services.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*services.Principal)
	return principal, ok
}

// AbortWithError maps a coded error to its HTTP status and aborts.
func AbortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(common.HTTPStatus(err), gin.H{"error": common.Message(err)})
}
