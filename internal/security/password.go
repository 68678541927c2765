package security

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash at the default cost. The plain
// password is never stored or logged anywhere.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash. The
// comparison itself is handled by bcrypt and is constant-time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
