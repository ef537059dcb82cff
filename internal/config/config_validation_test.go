// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerSource() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "sign-key"
	cfg.Storage.DB.DSN = "postgres://localhost/anime"
	return cfg
}

func TestNewServerConfig_Valid(t *testing.T) {
	cfg, err := newServerConfig(validServerSource())
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/anime", cfg.Storage.DB.DSN)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
}

func TestNewServerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no listeners", func(c *StructuredConfig) { c.Server.HTTPAddress = ""; c.Server.GRPCAddress = "" }, ErrInvalidServerConfigs},
		{"no sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(c *StructuredConfig) { c.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"bcrypt cost too high", func(c *StructuredConfig) { c.App.BcryptCost = 99 }, ErrInvalidAppConfigs},
		{"no catalog url", func(c *StructuredConfig) { c.Catalog.BaseURL = "" }, ErrInvalidCatalogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := validServerSource()
			tt.mutate(src)

			_, err := newServerConfig(src)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg, err := newClientConfig(defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "anime-saver.db", cfg.Storage.Path)
	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)

	src := defaultConfig()
	src.Storage.Local.Path = ":memory:"
	_, err = newClientConfig(src)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	src = defaultConfig()
	src.Adapter.RequestTimeout = 0
	_, err = newClientConfig(src)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
