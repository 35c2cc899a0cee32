// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated user session issued by the backend's auth
// endpoint.
//
// AccessToken is attached as a bearer token to every request made while the
// session is held; UserID is parsed from its "sub" claim.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    time.Time `json:"-"`
	UserID       uuid.UUID `json:"-"`
	Email        string    `json:"-"`
}

// Expired reports whether the session is past its expiry at now. A session
// without an expiry never expires.
func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}
