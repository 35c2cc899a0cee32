// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInPage renders email and password inputs and signs in through the
// scoped backend client. On success it navigates back to the menu with a
// [SignInNotice].
type SignInPage struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSignInPage creates the page with the email input focused and the
// password input masked.
func NewSignInPage() *SignInPage {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &SignInPage{
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

func (m *SignInPage) Init(context.Context) tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [SignInResult] — clears submitting state; on success navigates to the menu.
//   - esc            — cancels and navigates back to the menu.
//   - tab/shift+tab  — moves focus between inputs.
//   - enter          — validates inputs and dispatches the async sign-in command.
//
// All other key events are forwarded to the focused input.
func (m *SignInPage) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	if result, ok := msg.(SignInResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeBackendError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.inputs[1].SetValue("")
		email := result.Session.Email
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: SignInNotice{Email: email}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(ctx, email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignInPage) View(context.Context) string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]")
	} else {
		b.WriteString("\n[Войти]")
	}

	b.WriteString(renderError(m.errMsg))

	return renderPage("ВХОД", b.String(), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *SignInPage) cmdSignIn(ctx context.Context, email, pass string) tea.Cmd {
	client := provider.MustGetClient(ctx).Client()
	log := logger.FromContext(ctx)

	return func() tea.Msg {
		session, err := client.SignIn(ctx, email, pass)
		if err != nil {
			log.Warn().Err(err).Msg("sign in")
		}
		return SignInResult{Session: session, Err: err}
	}
}

func (m *SignInPage) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignInPage) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
