// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, a relative URL or a missing anon key).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidAuthConfigs indicates that only one of email and password
	// was provided.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidAppConfigs indicates invalid process-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
