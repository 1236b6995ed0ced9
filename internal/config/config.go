// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"LANGDIR_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"LANGDIR_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"LANGDIR_ENV" envDefault:"development"`
	LogLevel   string `env:"LANGDIR_LOG_LEVEL" envDefault:"info"`

	// Layout configuration
	DefaultLanguage string   `env:"LANGDIR_DEFAULT_LANG" envDefault:"en"`          // assumed when the page declares no language
	RTLStylesheet   string   `env:"LANGDIR_RTL_STYLESHEET" envDefault:"rtl-style"` // stylesheet id enabled for RTL layout
	LTRStylesheet   string   `env:"LANGDIR_LTR_STYLESHEET" envDefault:"main-style"`
	ExtraRTLCodes   []string `env:"LANGDIR_EXTRA_RTL_CODES" envSeparator:","` // additional RTL primary subtags
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("LANGDIR_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage))
	if cfg.DefaultLanguage == "" {
		return nil, fmt.Errorf("LANGDIR_DEFAULT_LANG must not be empty")
	}

	return cfg, nil
}
