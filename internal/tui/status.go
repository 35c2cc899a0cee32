// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/provider"
	"github.com/MKhiriev/go-backend-scope/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusPage probes the backend on open and shows its reachability, latency
// and the current session.
type StatusPage struct {
	spinner spinner.Model
	loading bool
	health  models.Health
	errMsg  string
}

// NewStatusPage creates the status page.
func NewStatusPage() *StatusPage {
	return &StatusPage{spinner: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

// Init starts the probe. It runs again every time the page is opened.
func (m *StatusPage) Init(ctx context.Context) tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdHealth(ctx))
}

func (m *StatusPage) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case healthResultMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeBackendError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.health = msg.health
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.Init(ctx)
		}
	}

	return m, nil
}

func (m *StatusPage) View(ctx context.Context) string {
	client := provider.MustGetClient(ctx).Client()

	var b strings.Builder
	b.WriteString("Сервер:    ")
	b.WriteString(client.URL())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Состояние: ")
		b.WriteString(m.spinner.View())
		b.WriteString(" проверка...\n")
	case m.errMsg != "":
		b.WriteString("Состояние: недоступен\n")
	default:
		b.WriteString(fmt.Sprintf("Состояние: доступен (HTTP %d)\n", m.health.StatusCode))
		b.WriteString("Задержка:  ")
		b.WriteString(m.health.Latency.Round(time.Millisecond).String())
		b.WriteString("\n")
	}

	if session, ok := client.Session(); ok {
		b.WriteString("Сессия:    ")
		b.WriteString(session.Email)
		if !session.ExpiresAt.IsZero() {
			b.WriteString(" до ")
			b.WriteString(session.ExpiresAt.Local().Format("15:04:05"))
		}
		if session.Expired(time.Now()) {
			b.WriteString(" (истекла)")
		}
	} else {
		b.WriteString("Сессия:    -")
	}

	b.WriteString(renderError(m.errMsg))

	return renderPage("СОСТОЯНИЕ СЕРВЕРА", b.String(), "r: обновить │ esc: назад")
}

func (m *StatusPage) cmdHealth(ctx context.Context) tea.Cmd {
	client := provider.MustGetClient(ctx).Client()

	return func() tea.Msg {
		health, err := client.Health(ctx)
		return healthResultMsg{health: health, err: err}
	}
}
