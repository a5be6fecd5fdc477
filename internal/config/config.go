// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads and validates application configuration
// from environment variables.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	MongoURI     string `env:"SAMAY_MONGODB_URI,required"`
	ServerHost   string `env:"SAMAY_SERVER_HOST" envDefault:"localhost"`
	ServerPort   int    `env:"SAMAY_SERVER_PORT" envDefault:"8080"`
	Env          string `env:"SAMAY_ENV" envDefault:"development"`
	LogLevel     string `env:"SAMAY_LOG_LEVEL" envDefault:"info"`
	OpenAIAPIKey string `env:"SAMAY_OPENAI_API_KEY"` // Optional; article summarization is disabled without it

	// Seeding configuration
	DoSeed bool `env:"SAMAY_DO_SEED" envDefault:"false"` // Seed the articles collection at startup if empty
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// placeholderPattern matches angle-bracketed template values such as <username>
// that are commonly left behind when a connection string is copied from docs.
var placeholderPattern = regexp.MustCompile(`<[^>]+>`)

// placeholderTokens are literal template values that must not appear in a
// usable connection string.
var placeholderTokens = []string{
	"YOUR_CLUSTER_URL",
	"YOUR_DB_NAME",
	"YOUR_USERNAME",
	"YOUR_PASSWORD",
}

// Load parses environment variables and returns a Config struct.
// The MongoDB URI is validated here, before any connection attempt,
// so a misconfigured deployment fails at startup.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := ValidateMongoURI(cfg.MongoURI); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateMongoURI checks that a MongoDB connection string is present,
// carries no unresolved placeholder tokens, and uses a recognized scheme.
func ValidateMongoURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("SAMAY_MONGODB_URI is not set; it should start with %q or %q", "mongodb://", "mongodb+srv://")
	}

	if placeholderPattern.MatchString(uri) {
		return fmt.Errorf("SAMAY_MONGODB_URI contains bracketed placeholder values; " +
			"replace them with actual credentials and cluster information")
	}
	for _, token := range placeholderTokens {
		if strings.Contains(uri, token) {
			return fmt.Errorf("SAMAY_MONGODB_URI contains the placeholder %q; "+
				"replace it with your actual MongoDB credentials", token)
		}
	}

	if !strings.HasPrefix(uri, "mongodb://") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return fmt.Errorf("invalid SAMAY_MONGODB_URI scheme: the connection string must start with %q or %q",
			"mongodb://", "mongodb+srv://")
	}

	return nil
}
