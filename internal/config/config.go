// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Backend holds the connection parameters of the backend service the
	// client is pre-configured for.
	Backend Backend `envPrefix:"BACKEND_"`

	// Auth holds optional credentials used to sign in before the UI starts.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the local session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the client logger appends to. The terminal belongs
	// to the UI, so logs never go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// HealthInterval is the period of the background backend probe.
	// Env: APP_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Backend holds the connection parameters of the backend service.
type Backend struct {
	// URL is the project base URL, e.g. "https://xyz.example.co".
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// AnonKey is the public API key sent with every request.
	// Env: BACKEND_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// Schema is the database schema queried through the REST endpoint.
	// Env: BACKEND_SCHEMA
	Schema string `env:"SCHEMA"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds optional sign-in credentials.
type Auth struct {
	// Env: AUTH_EMAIL
	Email string `env:"EMAIL"`
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// Storage holds the local session store settings.
type Storage struct {
	// SessionDB is the SQLite file the session is kept in between runs.
	// Env: STORAGE_SESSION_DB
	SessionDB string `env:"SESSION_DB"`

	// Disabled turns session persistence off. The session is then revoked
	// on exit. nil means the source left it unset, so a later source can
	// switch persistence back on with an explicit false.
	// Env: STORAGE_DISABLED
	Disabled *bool `env:"DISABLED"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
