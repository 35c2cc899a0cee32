// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend provides the pre-configured client for the hosted backend
// service: a REST endpoint for table reads and an auth endpoint for password
// sessions.
//
// The client is constructed once per process by [New] and handed to the UI
// through package provider. Callers depend on the [Service] interface only.
//
// Transport failures are returned wrapped; non-2xx responses are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is].
package backend

import (
	"context"

	"github.com/MKhiriev/go-backend-scope/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Service is the backend client contract. Implementations must be safe for
// concurrent use.
type Service interface {
	// URL returns the base URL the client is configured for.
	URL() string

	// Health probes the REST endpoint and reports its status and latency.
	Health(ctx context.Context) (models.Health, error)

	// SignIn exchanges email and password for a session. On success the
	// session's access token is attached to every subsequent request.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// SignOut revokes the current session on the server and forgets it
	// locally. The local session is cleared even if the request fails.
	SignOut(ctx context.Context) error

	// RefreshSession exchanges the held session's refresh token for a new
	// session. It returns [ErrNoSession] when no session is held. A rejected
	// refresh token drops the held session.
	RefreshSession(ctx context.Context) (models.Session, error)

	// RestoreSession adopts a session issued earlier, for example one loaded
	// from disk. No request is made.
	RestoreSession(session models.Session) error

	// Session returns the session held by the client, if any.
	Session() (models.Session, bool)

	// Select reads rows from one table.
	Select(ctx context.Context, query models.Query) ([]models.Row, error)
}
