// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownEnvKeys = []string{
	"CONFIG",
	"APP_LOG_FILE",
	"APP_LOG_LEVEL",
	"APP_HEALTH_INTERVAL",
	"BACKEND_URL",
	"BACKEND_ANON_KEY",
	"BACKEND_SCHEMA",
	"BACKEND_REQUEST_TIMEOUT",
	"AUTH_EMAIL",
	"AUTH_PASSWORD",
	"STORAGE_SESSION_DB",
	"STORAGE_DISABLED",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}
