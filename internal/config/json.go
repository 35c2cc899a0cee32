// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogFile        string   `json:"log_file"`
		LogLevel       string   `json:"log_level"`
		HealthInterval Duration `json:"health_interval"`
	} `json:"app,omitempty"`

	Backend struct {
		URL            string   `json:"url"`
		AnonKey        string   `json:"anon_key"`
		Schema         string   `json:"schema"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Auth struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"auth,omitempty"`

	Storage struct {
		SessionDB string `json:"session_db"`
		Disabled  *bool  `json:"disabled"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:        jsonCfg.App.LogFile,
			LogLevel:       jsonCfg.App.LogLevel,
			HealthInterval: time.Duration(jsonCfg.App.HealthInterval),
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			AnonKey:        jsonCfg.Backend.AnonKey,
			Schema:         jsonCfg.Backend.Schema,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Auth: Auth{
			Email:    jsonCfg.Auth.Email,
			Password: jsonCfg.Auth.Password,
		},
		Storage: Storage{
			SessionDB: jsonCfg.Storage.SessionDB,
			Disabled:  jsonCfg.Storage.Disabled,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
