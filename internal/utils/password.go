package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives the bcrypt hash stored on a user record at
// registration. Google-only accounts never go through here and keep an
// empty hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash verifies a login attempt against the stored bcrypt
// hash. Any comparison failure, malformed hash included, reads as a
// mismatch.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
