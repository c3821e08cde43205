// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSecretUnset is returned when the admin secret has not been configured.
var ErrSecretUnset = errors.New("admin secret is not configured")

// adminEmail is the identity email reported for the static admin token.
const adminEmail = "admin@baktikaryateknik.com"

// TokenAuth authenticates bearer tokens. Two token forms are accepted:
//
//   - the static admin secret itself, compared in constant time, which maps
//     to the built-in admin identity, and
//   - an HS256 session token issued by Login, signed with the same secret
//     and carrying the user's id and role.
type TokenAuth struct {
	secret []byte
}

// NewTokenAuth creates an authenticator over the shared admin secret.
func NewTokenAuth(secret string) *TokenAuth {
	return &TokenAuth{secret: []byte(secret)}
}

// SessionClaims are the claims carried by issued session tokens.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a signed session token for a user/role pair.
func (a *TokenAuth) GenerateSessionToken(userID, role string, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrSecretUnset
	}
	claims := &SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "pt-bakat-website",
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Authenticate resolves the request's bearer token to an identity.
func (a *TokenAuth) Authenticate(r *http.Request) (Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Identity{}, fmt.Errorf("authorization header required")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == authHeader || token == "" {
		return Identity{}, fmt.Errorf("bearer token required")
	}
	if len(a.secret) == 0 {
		return Identity{}, ErrSecretUnset
	}

	if subtle.ConstantTimeCompare([]byte(token), a.secret) == 1 {
		return Identity{UserID: "admin", Role: RoleAdmin, Email: adminEmail}, nil
	}

	claims, err := a.validateSessionToken(token)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid token: %w", err)
	}
	return Identity{UserID: claims.Subject, Role: claims.Role}, nil
}

func (a *TokenAuth) validateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("missing sub in token")
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("missing role in token")
	}
	return claims, nil
}
