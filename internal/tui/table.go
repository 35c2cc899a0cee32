// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-backend-scope/internal/logger"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	"github.com/MKhiriev/go-backend-scope/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultRowLimit = 20
	rowWidth        = 70
)

const (
	focusTable = iota
	focusLimit
	focusRows
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// TablePage reads rows from a table through the scoped backend client.
// The selected row can be copied to the clipboard as JSON.
type TablePage struct {
	inputs  []textinput.Model
	focus   int
	loading bool
	rows    []models.Row
	idx     int
	status  string
	errMsg  string
}

// NewTablePage creates the page with the table-name input focused.
func NewTablePage() *TablePage {
	tableInput := textinput.New()
	tableInput.Placeholder = "table"
	tableInput.CharLimit = 63
	tableInput.Width = 30
	tableInput.Focus()

	limitInput := textinput.New()
	limitInput.Placeholder = strconv.Itoa(defaultRowLimit)
	limitInput.CharLimit = 4
	limitInput.Width = 6
	limitInput.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	return &TablePage{inputs: []textinput.Model{tableInput, limitInput}}
}

func (m *TablePage) Init(context.Context) tea.Cmd {
	return textinput.Blink
}

func (m *TablePage) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case selectResultMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeBackendError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.rows
		m.idx = 0
		m.status = fmt.Sprintf("Получено строк: %d", len(msg.rows))
		if len(m.rows) > 0 {
			m.setFocus(focusRows)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Скопировано!"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % 3)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus + 2) % 3)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit(ctx)
		}

		if m.focus == focusRows {
			return m, m.updateRows(msg)
		}
	}

	if m.focus == focusRows {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *TablePage) View(context.Context) string {
	var b strings.Builder
	b.WriteString("Таблица │ [")
	b.WriteString(m.inputs[focusTable].View())
	b.WriteString("]\n")
	b.WriteString("Лимит   │ [")
	b.WriteString(m.inputs[focusLimit].View())
	b.WriteString("]\n\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.rows) == 0:
		b.WriteString("Нет данных\n")
	default:
		for i, row := range m.rows {
			line := fitText(rowJSON(row), rowWidth)
			if i == m.idx && m.focus == focusRows {
				b.WriteString(selectedRow.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("ТАБЛИЦЫ", strings.TrimRight(b.String(), "\n"), "enter: загрузить │ tab: фокус │ ↑/↓: строка │ c: копировать │ esc: назад")
}

func (m *TablePage) submit(ctx context.Context) tea.Cmd {
	if m.loading {
		return nil
	}

	table := strings.TrimSpace(m.inputs[focusTable].Value())
	if table == "" {
		m.errMsg = "Укажите таблицу"
		return nil
	}

	limit := defaultRowLimit
	if v := strings.TrimSpace(m.inputs[focusLimit].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			m.errMsg = "Лимит должен быть положительным числом"
			return nil
		}
		limit = n
	}

	m.errMsg = ""
	m.loading = true
	return m.cmdSelect(ctx, models.Query{Table: table, Limit: limit})
}

func (m *TablePage) updateRows(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.copy):
		if len(m.rows) == 0 {
			return nil
		}
		payload := rowJSON(m.rows[m.idx])
		return func() tea.Msg {
			return copiedMsg{err: copyToClipboard(payload)}
		}
	}
	return nil
}

func (m *TablePage) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *TablePage) cmdSelect(ctx context.Context, query models.Query) tea.Cmd {
	client := provider.MustGetClient(ctx).Client()
	log := logger.FromContext(ctx)

	return func() tea.Msg {
		rows, err := client.Select(ctx, query)
		if err != nil {
			log.Warn().Err(err).Str("table", query.Table).Msg("select")
		}
		return selectResultMsg{rows: rows, err: err}
	}
}

func rowJSON(row models.Row) string {
	b, err := json.Marshal(row)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(row))
	}
	return string(b)
}
