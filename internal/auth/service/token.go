// Package service provides JWT token generation and validation
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gestionprojet/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingClaims marks a token that passed signature and expiry checks but
// does not carry the required identity claims. Callers answer 403 for this,
// as opposed to 401 for tokens that fail verification outright.
var ErrMissingClaims = errors.New("invalid token structure")

// TokenGenerator handles JWT token generation and validation
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

// Generate creates a signed token embedding the user's CIN and role
func (tg *TokenGenerator) Generate(cin string, role models.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"cin":  cin,
		"role": int(role),
		"exp":  now.Add(tg.tokenExpiry).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies a token and returns the embedded CIN and role.
// Malformed, expired, or badly-signed tokens fail with a generic error;
// a valid token missing the cin or role claims fails with ErrMissingClaims.
func (tg *TokenGenerator) Validate(tokenString string) (string, models.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return "", 0, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", 0, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, fmt.Errorf("invalid token claims")
	}

	// Extract CIN
	cin, ok := claims["cin"].(string)
	if !ok || cin == "" {
		return "", 0, ErrMissingClaims
	}

	// Extract role (JWT claims decode numbers as float64)
	roleFloat, ok := claims["role"].(float64)
	if !ok {
		return "", 0, ErrMissingClaims
	}

	role := models.Role(int(roleFloat))
	if !role.Valid() {
		return "", 0, ErrMissingClaims
	}

	return cin, role, nil
}
