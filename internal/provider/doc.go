// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider publishes the backend client to a subtree of the
// application through context.Context and retrieves it again with a
// scope check.
//
// A scope is entered with [WithClient]; every context derived from the
// returned one resolves [GetClient] to the same [Scope]. Calling [GetClient]
// on a context that never passed through [WithClient] returns
// [ErrScopeMissing]. [MustGetClient] panics instead, for call sites where a
// missing scope can only be a wiring mistake.
//
// Scopes nest by shadowing: the nearest enclosing [WithClient] wins, the
// outer client stays visible to everything outside the inner subtree.
package provider
