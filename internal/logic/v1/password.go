package v1

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a bcrypt hash for the given plaintext.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// Side-effect-free: a mismatch is false, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
