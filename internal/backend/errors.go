// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("backend unavailable")

	// ErrEmptyTable is returned by Select when the query names no table.
	ErrEmptyTable = errors.New("table name is required")
	// ErrNoSession is returned by SignOut and RefreshSession when no session
	// is held.
	ErrNoSession = errors.New("no active session")
	// ErrSessionChanged is returned by RefreshSession when the session was
	// signed out or replaced while the refresh was in flight. The refreshed
	// tokens are discarded.
	ErrSessionChanged = errors.New("session changed during refresh")
	// ErrInvalidToken is returned when the auth endpoint issues a token whose
	// claims cannot be read.
	ErrInvalidToken = errors.New("invalid access token")
)
