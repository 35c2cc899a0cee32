package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localSessionRepository) Save(ctx context.Context, session models.Session) error {
	var expiresAt int64
	if !session.ExpiresAt.IsZero() {
		expiresAt = session.ExpiresAt.Unix()
	}

	_, err := l.DB.ExecContext(ctx, saveSession,
		session.AccessToken,
		session.RefreshToken,
		session.TokenType,
		expiresAt,
		session.Email,
		l.now().Unix(),
	)
	if err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Save").
			Msg("failed to execute upsert for session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) Load(ctx context.Context) (models.Session, error) {
	var (
		session   models.Session
		expiresAt int64
	)

	row := l.DB.QueryRowContext(ctx, getSession)
	if err := row.Err(); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Load").
			Msg("failed to execute query for getting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err := row.Scan(
		&session.AccessToken,
		&session.RefreshToken,
		&session.TokenType,
		&expiresAt,
		&session.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Load").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt > 0 {
		session.ExpiresAt = time.Unix(expiresAt, 0)
	}

	return session, nil
}

func (l *localSessionRepository) Delete(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, deleteSession); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.Delete").
			Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %w", ErrExecutingStatement, err)
	}
	return nil
}
