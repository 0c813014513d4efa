// ABOUTME: Local, pure inspection of the bearer token's expiry claim.
// ABOUTME: Decodes without verifying; the server is the authority on validity.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt extracts the exp claim from a JWT without verifying its
// signature. The client holds no signing secret; this is only used to skip
// doomed network calls, never to grant access.
func ExpiresAt(raw string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, fmt.Errorf("decode token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}
	return exp.Time, nil
}

// IsExpired reports whether raw is expired as of now. Malformed tokens and
// tokens without an expiry count as expired.
func IsExpired(raw string, now time.Time) bool {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
