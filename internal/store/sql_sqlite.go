package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
)

const memoryDSN = ":memory:"

func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dsn = resolveDSN(dsn)

	// db will be in file
	if dsn != memoryDSN {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// a second connection to :memory: would open a different database
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// resolveDSN places a relative database file next to the executable.
func resolveDSN(dsn string) string {
	if dsn == "" || dsn == memoryDSN {
		return memoryDSN
	}
	if strings.HasPrefix(dsn, "file:") || filepath.IsAbs(dsn) {
		return dsn
	}
	if execPath, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(execPath), dsn)
	}
	return dsn
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err = os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
