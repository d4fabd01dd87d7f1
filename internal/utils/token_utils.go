package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenOptions carries the signing parameters for access tokens. The values
// come straight from the JWT section of the service config.
type TokenOptions struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// SignAccessToken mints an HS256 access token whose subject is the user ID.
func SignAccessToken(userID string, opts TokenOptions) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    opts.Issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(opts.Secret))
}

// VerifyAccessToken checks the signature and registered claims of a token
// minted by SignAccessToken. Only HMAC signatures are accepted; expiry and
// not-before violations surface as the jwt package's sentinel errors.
func VerifyAccessToken(tokenString string, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// RandomHex returns nBytes of cryptographically secure randomness, hex
// encoded, so the resulting string is twice that length. Used for refresh
// tokens and OAuth state strings.
func RandomHex(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", fmt.Errorf("nBytes must be positive")
	}
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
