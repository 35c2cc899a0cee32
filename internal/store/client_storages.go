package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backend-scope/internal/config"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value. Close releases the underlying database.
type ClientStorages struct {
	// SessionRepository is the SQLite-backed store of the backend session.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.SessionDB, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SessionRepository].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.SessionDB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
