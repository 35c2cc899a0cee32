package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-backend-scope/internal/mock"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	"github.com/MKhiriev/go-backend-scope/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBackendURL = "http://backend.test"

// probe records the context of every call it receives.
type probe struct {
	name      string
	initCtx   context.Context
	updateCtx context.Context
	viewCtx   context.Context
	msgs      []tea.Msg
}

func (p *probe) Init(ctx context.Context) tea.Cmd {
	p.initCtx = ctx
	return nil
}

func (p *probe) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	p.updateCtx = ctx
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *probe) View(ctx context.Context) string {
	p.viewCtx = ctx
	return p.name
}

func newMockClient(t *testing.T) *mock.MockService {
	t.Helper()
	return mock.NewMockService(gomock.NewController(t))
}

// newRenderableClient returns a mock that tolerates any number of URL and
// Session calls made while rendering.
func newRenderableClient(t *testing.T) *mock.MockService {
	t.Helper()
	c := newMockClient(t)
	c.EXPECT().URL().Return(testBackendURL).AnyTimes()
	c.EXPECT().Session().Return(models.Session{}, false).AnyTimes()
	return c
}

func scopedContext(t *testing.T, c *mock.MockService) context.Context {
	t.Helper()
	ctx, err := provider.WithClient(context.Background(), c)
	require.NoError(t, err)
	return ctx
}

// collectMsgs runs cmd and flattens batches. Commands must not block.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
