package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashRefreshToken hashes a raw refresh token with bcrypt before storage.
func HashRefreshToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	return string(hash), err
}

// CompareRefreshTokenHash compares a raw refresh token with its stored
// bcrypt hash. The `token` parameter is the raw token string, not a hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(token)) == nil
}
