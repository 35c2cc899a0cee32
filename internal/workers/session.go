package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
)

const (
	defaultRefreshCheck  = 30 * time.Second
	defaultRefreshMargin = time.Minute
)

// SessionRefreshJob refreshes the held session shortly before it expires.
// Sessions without an expiry are left alone.
type SessionRefreshJob struct {
	client backend.Service
	every  time.Duration
	margin time.Duration
	logger *logger.Logger
	now    func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionRefreshJob checks the session every interval and refreshes it
// once it is within margin of its expiry. Non-positive values fall back to
// 30s and 1m.
func NewSessionRefreshJob(client backend.Service, every, margin time.Duration, log *logger.Logger) *SessionRefreshJob {
	if every <= 0 {
		every = defaultRefreshCheck
	}
	if margin <= 0 {
		margin = defaultRefreshMargin
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionRefreshJob{
		client: client,
		every:  every,
		margin: margin,
		logger: log,
		now:    time.Now,
	}
}

func (j *SessionRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.every)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

func (j *SessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *SessionRefreshJob) check(ctx context.Context) {
	session, ok := j.client.Session()
	if !ok || session.ExpiresAt.IsZero() {
		return
	}
	if j.now().Add(j.margin).Before(session.ExpiresAt) {
		return
	}

	refreshed, err := j.client.RefreshSession(ctx)
	if err != nil {
		switch {
		case ctx.Err() != nil:
		case errors.Is(err, backend.ErrNoSession), errors.Is(err, backend.ErrSessionChanged):
			// signed out or signed in again between the check and the refresh
			j.logger.Debug().Err(err).Msg("session refresh skipped")
		default:
			j.logger.Warn().Err(err).Msg("session refresh failed")
		}
		return
	}
	j.logger.Info().Time("expires_at", refreshed.ExpiresAt).Msg("session refreshed")
}
