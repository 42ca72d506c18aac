// Package auth implements the token codec and the request-level
// authentication and role gating middleware.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the decoded caller identity carried by a token
type Identity struct {
	ID       int
	Username string
	Role     string
}

// TokenGenerator signs and verifies identity tokens.
// Tokens have a fixed validity window and there is no server-side revocation,
// so verification is pure computation.
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Generate issues a signed token encoding the user's id, username and role
func (tg *TokenGenerator) Generate(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       identity.ID,
		"username": identity.Username,
		"role":     identity.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tg.tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a token and returns the identity encoded in it
func (tg *TokenGenerator) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return Identity{}, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	// JWT claims decode numbers as float64
	idFloat, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, fmt.Errorf("id not found in token")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("username not found in token")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("role not found in token")
	}

	return Identity{
		ID:       int(idFloat),
		Username: username,
		Role:     role,
	}, nil
}
