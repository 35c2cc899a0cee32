// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
	run   func(m *MenuPage, ctx context.Context) tea.Cmd
}

// MenuPage is the start page. It lists the other pages and shows who is
// signed in.
type MenuPage struct {
	items  []menuItem
	idx    int
	status string
	errMsg string
}

// NewMenuPage creates the menu with its fixed set of entries.
func NewMenuPage() *MenuPage {
	return &MenuPage{
		items: []menuItem{
			{title: "Состояние сервера", page: pageStatus},
			{title: "Войти", page: pageSignIn},
			{title: "Таблицы", page: pageTables},
			{title: "Выйти из аккаунта", run: (*MenuPage).cmdSignOut},
			{title: "Выход", run: func(*MenuPage, context.Context) tea.Cmd { return tea.Quit }},
		},
	}
}

func (m *MenuPage) Init(context.Context) tea.Cmd {
	return nil
}

func (m *MenuPage) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case SignInNotice:
		m.errMsg = ""
		m.status = "Выполнен вход: " + msg.Email
		return m, nil
	case signOutResultMsg:
		if msg.err != nil {
			m.errMsg = humanizeBackendError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Вы вышли из аккаунта"
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			item := m.items[m.idx]
			if item.run != nil {
				return m, item.run(m, ctx)
			}
			page := item.page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *MenuPage) View(ctx context.Context) string {
	client := provider.MustGetClient(ctx).Client()

	var b strings.Builder
	b.WriteString("Сервер: ")
	b.WriteString(client.URL())
	b.WriteString("\n")
	if session, ok := client.Session(); ok {
		b.WriteString("Пользователь: ")
		b.WriteString(session.Email)
	} else {
		b.WriteString("Пользователь: -")
	}
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(okStyle.Render("OK: "))
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, item.title))
	}

	b.WriteString(renderError(m.errMsg))

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия │ q: выход")
}

func (m *MenuPage) cmdSignOut(ctx context.Context) tea.Cmd {
	client := provider.MustGetClient(ctx).Client()
	log := logger.FromContext(ctx)

	return func() tea.Msg {
		err := client.SignOut(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("sign out")
		}
		return signOutResultMsg{err: err}
	}
}
