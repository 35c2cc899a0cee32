// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionClaims holds the claims the client reads from an access token. The
// signature is verified by the backend, never by the client.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func parseSessionToken(tokenString string) (userID uuid.UUID, email string, expiresAt time.Time, err error) {
	claims := &sessionClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return uuid.Nil, "", time.Time{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, "", time.Time{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	userID, err = uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", time.Time{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}

	if exp, _ := claims.GetExpirationTime(); exp != nil {
		expiresAt = exp.Time
	}

	return userID, claims.Email, expiresAt, nil
}
