// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the note server (e.g. "http://localhost:3000").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:3000"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Token is the bearer token used for authenticated commands.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`
}

// GetClientConfig builds and validates the client configuration from the
// environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}
