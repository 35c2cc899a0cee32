// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	tea "github.com/charmbracelet/bubbletea"
)

// Provider publishes one backend client to its children. Descendants read it
// with provider.GetClient or provider.MustGetClient on the context they are
// rendered with.
//
// The scope is entered once, beneath the context of the first render pass,
// and reused for the lifetime of the Provider. Providers nest by shadowing.
type Provider struct {
	client   backend.Service
	children []Component
	scoped   context.Context
}

// NewProvider returns a Provider rendering children inside a scope that
// carries client. It fails only for a nil client.
func NewProvider(client backend.Service, children ...Component) (*Provider, error) {
	if _, err := provider.WithClient(context.Background(), client); err != nil {
		return nil, err
	}

	return &Provider{
		client:   client,
		children: children,
	}, nil
}

// Context returns the scoped context, or nil before the Provider is mounted.
func (p *Provider) Context() context.Context {
	return p.scoped
}

// Children returns the current child components.
func (p *Provider) Children() []Component {
	return p.children
}

func (p *Provider) Init(ctx context.Context) tea.Cmd {
	scoped := p.mount(ctx)

	cmds := make([]tea.Cmd, 0, len(p.children))
	for _, child := range p.children {
		cmds = append(cmds, child.Init(scoped))
	}
	return tea.Batch(cmds...)
}

func (p *Provider) Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd) {
	scoped := p.mount(ctx)

	cmds := make([]tea.Cmd, 0, len(p.children))
	for i, child := range p.children {
		next, cmd := child.Update(scoped, msg)
		p.children[i] = next
		cmds = append(cmds, cmd)
	}
	return p, tea.Batch(cmds...)
}

// View renders the children one below the other, otherwise unchanged.
func (p *Provider) View(ctx context.Context) string {
	scoped := p.mount(ctx)

	views := make([]string, 0, len(p.children))
	for _, child := range p.children {
		views = append(views, child.View(scoped))
	}
	return strings.Join(views, "\n")
}

func (p *Provider) mount(parent context.Context) context.Context {
	if p.scoped != nil {
		return p.scoped
	}
	if parent == nil {
		parent = context.Background()
	}

	scoped, err := provider.WithClient(parent, p.client)
	if err != nil {
		// client was validated by NewProvider and parent is non-nil.
		panic(err)
	}
	p.scoped = scoped
	return scoped
}
