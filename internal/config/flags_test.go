// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-u", "https://demo.example.co",
		"-k", "anon",
		"-schema", "api",
		"-t", "20s",
		"-log-file", "/tmp/c.log",
		"-log-level", "warn",
		"-health-interval", "90s",
		"-email", "bob@example.com",
		"-password", "pw",
		"-session-db", "/tmp/s.db",
		"-no-session-store",
		"-config", "/etc/client.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://demo.example.co", cfg.Backend.URL)
	assert.Equal(t, "anon", cfg.Backend.AnonKey)
	assert.Equal(t, "api", cfg.Backend.Schema)
	assert.Equal(t, 20*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "/tmp/c.log", cfg.App.LogFile)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.App.HealthInterval)
	assert.Equal(t, "bob@example.com", cfg.Auth.Email)
	assert.Equal(t, "pw", cfg.Auth.Password)
	assert.Equal(t, "/tmp/s.db", cfg.Storage.SessionDB)
	require.NotNil(t, cfg.Storage.Disabled)
	assert.True(t, *cfg.Storage.Disabled)
	assert.Equal(t, "/etc/client.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Nil(t, cfg.Storage.Disabled)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-t", "later"})

	require.Error(t, err)
}
