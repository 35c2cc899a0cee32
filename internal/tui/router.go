package tui

import (
	"context"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	"github.com/MKhiriev/go-backend-scope/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Router is a page switcher:
// 1) keeps the active page
// 2) handles global ctrl+c quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type Router struct {
	pages   map[string]Component
	current string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRouter registers all pages and opens startPage.
func NewRouter(pages map[string]Component, startPage string, buildInfo models.AppBuildInfo) *Router {
	return &Router{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

// Current returns the name of the active page.
func (r *Router) Current() string {
	return r.current
}

// QuitByUser reports whether the program ended on ctrl+c.
func (r *Router) QuitByUser() bool {
	return r.quitByUser
}

func (r *Router) Init(ctx context.Context) tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init(ctx)
}

func (r *Router) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.forceQ):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.current == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			logger.FromContext(ctx).Warn().Str("page", nav.Page).Msg("navigate to unknown page")
			return r, nil
		}

		logger.FromContext(ctx).Debug().Str("from", r.current).Str("to", nav.Page).Msg("navigate")
		r.showBuildInfo = false
		r.current = nav.Page

		if nav.Payload != nil {
			payload := nav.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init(ctx)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(ctx, msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r *Router) View(ctx context.Context) string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, provider.MustGetClient(ctx).Client().URL())
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("TUI", "", "")
	}
	return page.View(ctx)
}
