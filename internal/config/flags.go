// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-u backend base URL
//	-k backend anon key
//	-schema database schema
//	-t request timeout (e.g., "15s")
//	-log-file log file path
//	-log-level log level
//	-health-interval background health probe period (e.g., "1m")
//	-email sign-in email
//	-password sign-in password
//	-session-db session store file
//	-no-session-store do not keep the session between runs
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		backendURL     string
		anonKey        string
		schema         string
		requestTimeout time.Duration
		logFile        string
		logLevel       string
		healthInterval time.Duration
		email          string
		password       string
		sessionDB      string
		noSessionStore bool
		jsonConfigPath string
	)

	fs.StringVar(&backendURL, "u", "", "Backend base URL")
	fs.StringVar(&anonKey, "k", "", "Backend anon key")
	fs.StringVar(&schema, "schema", "", "Database schema")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Background health probe period (e.g., 1m)")
	fs.StringVar(&email, "email", "", "Sign-in email")
	fs.StringVar(&password, "password", "", "Sign-in password")
	fs.StringVar(&sessionDB, "session-db", "", "Session store file")
	fs.BoolVar(&noSessionStore, "no-session-store", false, "Do not keep the session between runs")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var storageDisabled *bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "no-session-store" {
			storageDisabled = &noSessionStore
		}
	})

	return &StructuredConfig{
		App: App{
			LogFile:        logFile,
			LogLevel:       logLevel,
			HealthInterval: healthInterval,
		},
		Backend: Backend{
			URL:            backendURL,
			AnonKey:        anonKey,
			Schema:         schema,
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			Email:    email,
			Password: password,
		},
		Storage: Storage{
			SessionDB: sessionDB,
			Disabled:  storageDisabled,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
