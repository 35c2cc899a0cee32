package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilBackend = errors.New("tui: backend client is nil")

type TUI struct {
	client    backend.Service
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client backend.Service, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if client == nil {
		return nil, ErrNilBackend
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{client: client, buildInfo: buildInfo, logger: log}, nil
}

// Tree builds the component tree: every page sits under one Provider that
// publishes the backend client.
func (t *TUI) Tree() (*Provider, *Router, error) {
	pages := map[string]Component{
		pageMenu:   NewMenuPage(),
		pageStatus: NewStatusPage(),
		pageSignIn: NewSignInPage(),
		pageTables: NewTablePage(),
	}

	router := NewRouter(pages, pageMenu, t.buildInfo)
	root, err := NewProvider(t.client, router)
	if err != nil {
		return nil, nil, err
	}
	return root, router, nil
}

// Run blocks until the user leaves the program or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root, router, err := t.Tree()
	if err != nil {
		return err
	}

	ctx = t.logger.WithContext(ctx)
	_, runErr := tea.NewProgram(newProgram(ctx, root), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("ui stopped by context")
			return nil
		}
		return runErr
	}

	if router.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}
