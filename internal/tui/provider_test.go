// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-backend-scope/internal/mock"
	"github.com/MKhiriev/go-backend-scope/internal/provider"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxMarker string

func TestNewProvider_NilClient(t *testing.T) {
	_, err := NewProvider(nil)
	assert.ErrorIs(t, err, provider.ErrNilClient)

	var typedNil *mock.MockService
	_, err = NewProvider(typedNil)
	assert.ErrorIs(t, err, provider.ErrNilClient)
}

func TestProvider_ContextNilBeforeMount(t *testing.T) {
	p, err := NewProvider(newMockClient(t))
	require.NoError(t, err)

	assert.Nil(t, p.Context())
}

func TestProvider_ChildrenReceiveSameClient(t *testing.T) {
	c := newMockClient(t)
	first, second := &probe{name: "first"}, &probe{name: "second"}

	p, err := NewProvider(c, first, second)
	require.NoError(t, err)
	p.View(context.Background())

	for _, child := range []*probe{first, second} {
		scope, err := provider.GetClient(child.viewCtx)
		require.NoError(t, err)
		assert.Same(t, c, scope.Client())
	}
}

func TestProvider_MountsOnce(t *testing.T) {
	c := newMockClient(t)
	child := &probe{name: "child"}

	p, err := NewProvider(c, child)
	require.NoError(t, err)

	p.Init(context.Background())
	mounted := p.Context()
	require.NotNil(t, mounted)

	p.Update(context.Background(), "tick")
	p.View(context.Background())
	p.View(context.Background())

	assert.True(t, mounted == p.Context())
	assert.True(t, mounted == child.initCtx)
	assert.True(t, mounted == child.updateCtx)
	assert.True(t, mounted == child.viewCtx)
}

func TestProvider_InheritsParentContext(t *testing.T) {
	child := &probe{}
	p, err := NewProvider(newMockClient(t), child)
	require.NoError(t, err)

	parent := context.WithValue(context.Background(), ctxMarker("k"), "v")
	p.View(parent)

	assert.Equal(t, "v", child.viewCtx.Value(ctxMarker("k")))
}

func TestProvider_NilParentContext(t *testing.T) {
	c := newMockClient(t)
	child := &probe{}
	p, err := NewProvider(c, child)
	require.NoError(t, err)

	var nilCtx context.Context
	assert.NotPanics(t, func() { p.View(nilCtx) })

	scope, err := provider.GetClient(child.viewCtx)
	require.NoError(t, err)
	assert.Same(t, c, scope.Client())
}

func TestProvider_SiblingsAreIsolated(t *testing.T) {
	a, b := newMockClient(t), newMockClient(t)
	underA, underB := &probe{name: "a"}, &probe{name: "b"}

	pa, err := NewProvider(a, underA)
	require.NoError(t, err)
	pb, err := NewProvider(b, underB)
	require.NoError(t, err)

	parent := context.Background()
	pa.View(parent)
	pb.View(parent)

	scopeA, err := provider.GetClient(underA.viewCtx)
	require.NoError(t, err)
	scopeB, err := provider.GetClient(underB.viewCtx)
	require.NoError(t, err)

	assert.Same(t, a, scopeA.Client())
	assert.Same(t, b, scopeB.Client())
}

func TestProvider_NestedShadowing(t *testing.T) {
	outer, inner := newMockClient(t), newMockClient(t)
	outerChild, innerChild := &probe{name: "outer"}, &probe{name: "inner"}

	nested, err := NewProvider(inner, innerChild)
	require.NoError(t, err)
	root, err := NewProvider(outer, outerChild, nested)
	require.NoError(t, err)

	root.View(context.Background())

	outerScope, err := provider.GetClient(outerChild.viewCtx)
	require.NoError(t, err)
	innerScope, err := provider.GetClient(innerChild.viewCtx)
	require.NoError(t, err)

	assert.Same(t, outer, outerScope.Client())
	assert.Same(t, inner, innerScope.Client())
}

func TestProvider_ViewRendersChildrenUnchanged(t *testing.T) {
	p, err := NewProvider(newMockClient(t), &probe{name: "top"}, &probe{name: "bottom"})
	require.NoError(t, err)

	assert.Equal(t, "top\nbottom", p.View(context.Background()))
	assert.Len(t, p.Children(), 2)
}

func TestProvider_UpdateForwardsMessage(t *testing.T) {
	child := &probe{}
	p, err := NewProvider(newMockClient(t), child)
	require.NoError(t, err)

	next, cmd := p.Update(context.Background(), "hello")

	assert.Same(t, p, next)
	assert.Nil(t, cmd)
	assert.Equal(t, []tea.Msg{"hello"}, child.msgs)
}

func TestConsumerOutsideProviderPanics(t *testing.T) {
	assert.PanicsWithError(t, "must get client: "+provider.ErrScopeMissing.Error(), func() {
		NewMenuPage().View(context.Background())
	})
}

func TestProgram_ThreadsRootContext(t *testing.T) {
	child := &probe{name: "page"}
	root, err := NewProvider(newMockClient(t), child)
	require.NoError(t, err)

	parent := context.WithValue(context.Background(), ctxMarker("root"), true)
	prog := newProgram(parent, root)

	prog.Init()
	_, _ = prog.Update("msg")
	assert.Equal(t, "page", prog.View())

	assert.Equal(t, true, child.viewCtx.Value(ctxMarker("root")))
	_, err = provider.GetClient(child.updateCtx)
	assert.NoError(t, err)
}
