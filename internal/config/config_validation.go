// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Backend.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: url %q must be an absolute http(s) URL", ErrInvalidBackendConfigs, cfg.Backend.URL)
	}

	if cfg.Backend.AnonKey == "" {
		return fmt.Errorf("%w: anon key is required", ErrInvalidBackendConfigs)
	}

	if cfg.Backend.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidBackendConfigs)
	}

	if cfg.App.HealthInterval < 0 {
		return fmt.Errorf("%w: health interval must be positive", ErrInvalidAppConfigs)
	}

	if (cfg.Auth.Email == "") != (cfg.Auth.Password == "") {
		return ErrInvalidAuthConfigs
	}

	return nil
}
