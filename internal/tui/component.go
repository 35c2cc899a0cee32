// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a node of the UI tree. It mirrors [tea.Model] but every method
// receives the context of its enclosing scope, so values published by a
// [Provider] reach all descendants without being passed explicitly.
type Component interface {
	Init(ctx context.Context) tea.Cmd
	Update(ctx context.Context, msg tea.Msg) (Component, tea.Cmd)
	View(ctx context.Context) string
}

// program adapts a Component tree to [tea.Model] by threading the root
// context into every render pass.
type program struct {
	ctx  context.Context
	root Component
}

func newProgram(ctx context.Context, root Component) program {
	return program{ctx: ctx, root: root}
}

func (p program) Init() tea.Cmd {
	return p.root.Init(p.ctx)
}

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.root.Update(p.ctx, msg)
	p.root = next
	return p, cmd
}

func (p program) View() string {
	return p.root.View(p.ctx)
}
