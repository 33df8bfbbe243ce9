// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver() == DriverUnknown {
		return fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Relay.ClientBuffer < 1 {
		return fmt.Errorf("%w: client buffer must be positive", ErrInvalidRelayConfigs)
	}
	if cfg.Relay.RetryBaseDelay <= 0 || cfg.Relay.RetryMaxDelay < cfg.Relay.RetryBaseDelay {
		return fmt.Errorf("%w: invalid retry delays", ErrInvalidRelayConfigs)
	}

	return nil
}

// validate checks the client configuration.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
