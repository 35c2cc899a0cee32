// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-backend-scope/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockClient(t *testing.T) *mock.MockService {
	t.Helper()
	return mock.NewMockService(gomock.NewController(t))
}

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "backendClientScope", scopeCtxKey.String())
}

func TestGetClient_InsideScope(t *testing.T) {
	c := newMockClient(t)

	ctx, err := WithClient(context.Background(), c)
	require.NoError(t, err)

	scope, err := GetClient(ctx)

	require.NoError(t, err)
	assert.Same(t, c, scope.Client())
}

func TestGetClient_DescendantContexts(t *testing.T) {
	c := newMockClient(t)
	ctx, err := WithClient(context.Background(), c)
	require.NoError(t, err)

	child, cancel := context.WithCancel(ctx)
	defer cancel()
	grandchild := context.WithValue(child, contextKey("unrelated"), 1)

	for _, descendant := range []context.Context{child, grandchild} {
		scope, err := GetClient(descendant)
		require.NoError(t, err)
		assert.Same(t, c, scope.Client())
	}
}

func TestGetClient_OutsideScope(t *testing.T) {
	scope, err := GetClient(context.Background())

	require.ErrorIs(t, err, ErrScopeMissing)
	assert.Nil(t, scope.Client())
	assert.Contains(t, err.Error(), "within a client provider scope")
}

func TestGetClient_NilContext(t *testing.T) {
	var nilCtx context.Context

	_, err := GetClient(nilCtx)

	assert.ErrorIs(t, err, ErrScopeMissing)
}

func TestMustGetClient_PanicsOutsideScope(t *testing.T) {
	assert.PanicsWithError(t, "must get client: "+ErrScopeMissing.Error(), func() {
		MustGetClient(context.Background())
	})
}

func TestMustGetClient_InsideScope(t *testing.T) {
	c := newMockClient(t)
	ctx, err := WithClient(context.Background(), c)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Same(t, c, MustGetClient(ctx).Client())
	})
}

// TestGetClient_RepeatedCallsSameReference checks that the scope is not
// rebuilt per lookup.
func TestGetClient_RepeatedCallsSameReference(t *testing.T) {
	c := newMockClient(t)
	ctx, err := WithClient(context.Background(), c)
	require.NoError(t, err)

	first, err := GetClient(ctx)
	require.NoError(t, err)
	for range 10 {
		next, err := GetClient(ctx)
		require.NoError(t, err)
		assert.Same(t, first.Client(), next.Client())
		assert.Equal(t, first, next)
	}
}

func TestGetClient_SiblingScopesAreIsolated(t *testing.T) {
	root := context.Background()
	left, right := newMockClient(t), newMockClient(t)

	leftCtx, err := WithClient(root, left)
	require.NoError(t, err)
	rightCtx, err := WithClient(root, right)
	require.NoError(t, err)

	leftScope, err := GetClient(leftCtx)
	require.NoError(t, err)
	rightScope, err := GetClient(rightCtx)
	require.NoError(t, err)

	assert.Same(t, left, leftScope.Client())
	assert.Same(t, right, rightScope.Client())
	assert.NotSame(t, leftScope.Client(), rightScope.Client())

	_, err = GetClient(root)
	assert.ErrorIs(t, err, ErrScopeMissing)
}

func TestGetClient_NestedScopeShadows(t *testing.T) {
	outer, inner := newMockClient(t), newMockClient(t)

	outerCtx, err := WithClient(context.Background(), outer)
	require.NoError(t, err)
	innerCtx, err := WithClient(outerCtx, inner)
	require.NoError(t, err)

	assert.Same(t, inner, MustGetClient(innerCtx).Client())
	assert.Same(t, outer, MustGetClient(outerCtx).Client())
}

func TestLookupClient(t *testing.T) {
	var nilCtx context.Context
	_, ok := LookupClient(nilCtx)
	assert.False(t, ok)

	_, ok = LookupClient(context.Background())
	assert.False(t, ok)

	c := newMockClient(t)
	ctx, err := WithClient(context.Background(), c)
	require.NoError(t, err)

	scope, ok := LookupClient(ctx)
	assert.True(t, ok)
	assert.Same(t, c, scope.Client())
}

func TestWithClient_Errors(t *testing.T) {
	var nilCtx context.Context
	_, err := WithClient(nilCtx, newMockClient(t))
	assert.ErrorIs(t, err, ErrNilContext)

	_, err = WithClient(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilClient)

	var typedNil *mock.MockService
	_, err = WithClient(context.Background(), typedNil)
	assert.ErrorIs(t, err, ErrNilClient)
}

func TestGetClient_ConcurrentReaders(t *testing.T) {
	c := newMockClient(t)
	ctx, err := WithClient(context.Background(), c)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scope, err := GetClient(ctx)
			assert.NoError(t, err)
			assert.Same(t, c, scope.Client())
		}()
	}
	wg.Wait()
}
