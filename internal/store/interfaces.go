// Package store keeps client state on the local disk.
//
// The only state kept today is the backend session, so a restart can resume
// it without asking the user to sign in again. Data lives in a SQLite file
// whose schema is managed by package migrations.
package store

import (
	"context"

	"github.com/MKhiriev/go-backend-scope/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionRepository stores at most one session.
type SessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session models.Session) error
	// Load returns the stored session or [ErrLocalSessionNotFound].
	Load(ctx context.Context) (models.Session, error)
	// Delete removes the stored session. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}
