// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:3000", want: NetAddress{Host: "0.0.0.0", Port: 3000}},
		{name: "all interfaces", input: ":3000", want: NetAddress{Port: 3000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:abc", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllValues(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:3001",
		"-grpc-address", "localhost:9090",
		"-d", "postgres://localhost/db",
		"-db-name", "notes_db",
		"-c", "/tmp/config.json",
		"-password-hash-key", "pepper",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "30m",
		"-request-timeout", "5s",
		"-log-level", "warn",
		"-relay-owner-scoped",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:3001", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "notes_db", cfg.Storage.DB.Name)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
	assert.Equal(t, "pepper", cfg.App.PasswordHashKey)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.True(t, cfg.Relay.OwnerScoped)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Server.HTTPAddress)
	assert.Equal(t, "", cfg.Storage.DB.DSN)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}
