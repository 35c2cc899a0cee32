// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-backend-scope/internal/backend"
)

// contextKey is a private type for context keys so the scope cannot collide
// with values stored by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

const scopeCtxKey = contextKey("backendClientScope")

// Scope is the value published for a subtree. It is created once when the
// scope is entered and never changes afterwards.
type Scope struct {
	client backend.Service
}

// Client returns the backend client the scope was entered with.
func (s Scope) Client() backend.Service {
	return s.client
}

// WithClient enters a new scope beneath ctx that carries client.
//
// The returned context shadows any scope already present in ctx.
func WithClient(ctx context.Context, client backend.Service) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if isNil(client) {
		return nil, ErrNilClient
	}

	return context.WithValue(ctx, scopeCtxKey, Scope{client: client}), nil
}

// LookupClient returns the nearest enclosing scope and whether one was found.
func LookupClient(ctx context.Context) (Scope, bool) {
	if ctx == nil {
		return Scope{}, false
	}
	scope, ok := ctx.Value(scopeCtxKey).(Scope)
	return scope, ok
}

// GetClient returns the nearest enclosing scope, or [ErrScopeMissing] when ctx
// is outside every scope.
//
// Example usage:
//
//	scope, err := provider.GetClient(ctx)
//	if err != nil {
//	    return err
//	}
//	rows, err := scope.Client().Select(ctx, query)
func GetClient(ctx context.Context) (Scope, error) {
	scope, ok := LookupClient(ctx)
	if !ok {
		return Scope{}, ErrScopeMissing
	}
	return scope, nil
}

// MustGetClient is like [GetClient] but panics when ctx is outside every
// scope. The panic value is an error wrapping [ErrScopeMissing].
func MustGetClient(ctx context.Context) Scope {
	scope, err := GetClient(ctx)
	if err != nil {
		panic(fmt.Errorf("must get client: %w", err))
	}
	return scope
}

func isNil(client backend.Service) bool {
	if client == nil {
		return true
	}
	v := reflect.ValueOf(client)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
