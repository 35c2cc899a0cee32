// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultSchema         = "public"
	defaultRequestTimeout = 15 * time.Second
	defaultLogFile        = "client.log"
	defaultLogLevel       = "info"
	defaultHealthInterval = time.Minute
	defaultSessionDB      = "session.db"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogFile  string
	LogLevel string
	// HealthInterval is how often the backend is probed in the background.
	HealthInterval time.Duration
}

// ClientBackend holds the settings used to construct the backend client.
type ClientBackend struct {
	// URL is the backend base URL without a trailing slash.
	URL string
	// AnonKey is the public API key.
	AnonKey string
	// Schema is the database schema exposed through the REST endpoint.
	Schema string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientAuth holds the optional credentials used for automatic sign-in.
type ClientAuth struct {
	Email    string
	Password string
}

// Enabled reports whether automatic sign-in is configured.
func (a ClientAuth) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// ClientStorage holds the local session store settings.
type ClientStorage struct {
	// SessionDB is the SQLite DSN of the session store.
	SessionDB string
	// Persist reports whether the session is kept between runs.
	Persist bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Backend ClientBackend
	Auth    ClientAuth
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps cfg onto a [ClientConfig] and fills defaults for the
// settings that have one.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:        cfg.App.LogFile,
			LogLevel:       cfg.App.LogLevel,
			HealthInterval: cfg.App.HealthInterval,
		},
		Backend: ClientBackend{
			URL:            strings.TrimRight(strings.TrimSpace(cfg.Backend.URL), "/"),
			AnonKey:        strings.TrimSpace(cfg.Backend.AnonKey),
			Schema:         cfg.Backend.Schema,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Auth: ClientAuth{
			Email:    strings.TrimSpace(cfg.Auth.Email),
			Password: cfg.Auth.Password,
		},
		Storage: ClientStorage{
			SessionDB: strings.TrimSpace(cfg.Storage.SessionDB),
			Persist:   cfg.Storage.Disabled == nil || !*cfg.Storage.Disabled,
		},
	}

	if clientCfg.App.LogFile == "" {
		clientCfg.App.LogFile = defaultLogFile
	}
	if clientCfg.App.LogLevel == "" {
		clientCfg.App.LogLevel = defaultLogLevel
	}
	if clientCfg.App.HealthInterval == 0 {
		clientCfg.App.HealthInterval = defaultHealthInterval
	}
	if clientCfg.Storage.SessionDB == "" {
		clientCfg.Storage.SessionDB = defaultSessionDB
	}
	if clientCfg.Backend.Schema == "" {
		clientCfg.Backend.Schema = defaultSchema
	}
	if clientCfg.Backend.RequestTimeout == 0 {
		clientCfg.Backend.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg
}
