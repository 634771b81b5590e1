package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash of the plaintext. The output
// differs between calls for the same input; verification is deterministic.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A malformed hash is treated as a mismatch, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
