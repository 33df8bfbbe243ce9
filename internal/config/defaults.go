// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = ":3000"
	defaultTokenIssuer    = "go-note-keeper"
	defaultTokenDuration  = time.Hour
	defaultLogLevel       = "info"
	defaultVersion        = "N/A"
	defaultMongoDBName    = "notes"
	defaultRetryBaseDelay = time.Second
	defaultRetryMaxDelay  = 30 * time.Second
	defaultClientBuffer   = 256
)

// defaultConfig returns the values used for every field left empty by the
// configured sources.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
			Version:       defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Name: defaultMongoDBName,
			},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Relay: Relay{
			RetryBaseDelay: defaultRetryBaseDelay,
			RetryMaxDelay:  defaultRetryMaxDelay,
			ClientBuffer:   defaultClientBuffer,
		},
	}
}
