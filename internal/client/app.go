package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/config"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/store"
	"github.com/MKhiriev/go-backend-scope/internal/tui"
	"github.com/MKhiriev/go-backend-scope/internal/workers"
)

const shutdownTimeout = 5 * time.Second

var ErrNilDependency = errors.New("client: nil dependency")

var _ Client = (*App)(nil)

type App struct {
	cfg      *config.ClientConfig
	backend  backend.Service
	sessions store.SessionRepository
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
	now      func() time.Time
}

// NewApp wires the application. sessions may be nil, in which case the
// session is not kept between runs and is revoked on exit.
func NewApp(cfg *config.ClientConfig, svc backend.Service, sessions store.SessionRepository, ui UI, log *logger.Logger) (*App, error) {
	if cfg == nil || svc == nil || ui == nil {
		return nil, ErrNilDependency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:      cfg,
		backend:  svc,
		sessions: sessions,
		ui:       ui,
		workers: workers.New(
			workers.NewHealthJob(svc, cfg.App.HealthInterval, log.GetChildLogger()),
			workers.NewSessionRefreshJob(svc, 0, 0, log.GetChildLogger()),
		),
		logger: log,
		now:    time.Now,
	}, nil
}

// Run resumes a stored session or signs in with the configured credentials,
// then blocks in the UI. Failures before the UI starts are logged and the UI
// starts anyway.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("url", a.backend.URL()).Msg("client started")

	a.resumeSession(ctx)

	if _, ok := a.backend.Session(); !ok && a.cfg.Auth.Enabled() {
		session, err := a.backend.SignIn(ctx, a.cfg.Auth.Email, a.cfg.Auth.Password)
		if err != nil {
			a.logger.Warn().Err(err).Str("email", a.cfg.Auth.Email).Msg("automatic sign in failed")
		} else {
			a.logger.Info().Str("user_id", session.UserID.String()).Msg("signed in")
		}
	}

	a.workers.Start(ctx)
	runErr := a.ui.Run(ctx)
	a.workers.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	a.finishSession(shutdownCtx)
	cancel()

	if runErr != nil {
		if errors.Is(runErr, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		return fmt.Errorf("run ui: %w", runErr)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// resumeSession adopts the stored session, refreshing it when it has
// expired. A session that cannot be resumed is removed from the store.
func (a *App) resumeSession(ctx context.Context) {
	if a.sessions == nil {
		return
	}

	stored, err := a.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Warn().Err(err).Msg("load stored session")
		}
		return
	}

	if err = a.backend.RestoreSession(stored); err != nil {
		a.logger.Warn().Err(err).Msg("restore stored session")
		a.forgetSession(ctx)
		return
	}

	// expiry is re-read from the token claims by RestoreSession
	restored, ok := a.backend.Session()
	if !ok || restored.Expired(a.now()) {
		if _, err = a.backend.RefreshSession(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("refresh stored session")
			a.forgetSession(ctx)
			return
		}
	}

	a.logger.Info().Msg("session resumed")
}

// finishSession keeps the held session for the next run, or revokes it when
// persistence is off.
func (a *App) finishSession(ctx context.Context) {
	session, ok := a.backend.Session()

	if a.sessions == nil {
		if !ok {
			return
		}
		if err := a.backend.SignOut(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("sign out on exit")
		}
		return
	}

	if !ok {
		a.forgetSession(ctx)
		return
	}
	if err := a.sessions.Save(ctx, session); err != nil {
		a.logger.Warn().Err(err).Msg("save session")
	}
}

func (a *App) forgetSession(ctx context.Context) {
	if err := a.sessions.Delete(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("delete stored session")
	}
}
