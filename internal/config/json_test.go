// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONConfig(t, `{
		"app": { "log_file": "/var/log/client.log", "log_level": "debug", "health_interval": "5m" },
		"backend": {
			"url": "https://demo.example.co",
			"anon_key": "anon",
			"schema": "api",
			"request_timeout": "45s"
		},
		"auth": { "email": "alice@example.com", "password": "secret" },
		"storage": { "session_db": "/var/lib/client/session.db" }
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "/var/log/client.log", cfg.App.LogFile)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.App.HealthInterval)
	assert.Equal(t, "https://demo.example.co", cfg.Backend.URL)
	assert.Equal(t, "anon", cfg.Backend.AnonKey)
	assert.Equal(t, "api", cfg.Backend.Schema)
	assert.Equal(t, 45*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "alice@example.com", cfg.Auth.Email)
	assert.Equal(t, "secret", cfg.Auth.Password)
	assert.Equal(t, "/var/lib/client/session.db", cfg.Storage.SessionDB)
	assert.Nil(t, cfg.Storage.Disabled)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_ExplicitStorageEnabled(t *testing.T) {
	p := writeJSONConfig(t, `{"storage": {"disabled": false}}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg.Storage.Disabled)
	assert.False(t, *cfg.Storage.Disabled)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := writeJSONConfig(t, `{"backend": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Backend.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := writeJSONConfig(t, `{"backend": `)

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeJSONConfig(t, `{"backend": {"request_timeout": true}}`)

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
