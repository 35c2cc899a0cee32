// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import "errors"

var (
	// ErrScopeMissing is returned when the client is requested from a context
	// that is not inside any provider scope.
	ErrScopeMissing = errors.New("provider: GetClient must be used within a client provider scope")

	// ErrNilContext is returned when a scope is entered with a nil parent context.
	ErrNilContext = errors.New("provider: nil context")

	// ErrNilClient is returned when a scope is entered without a client.
	ErrNilClient = errors.New("provider: nil client")
)
