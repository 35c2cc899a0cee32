package store

import (
	"database/sql"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
