// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func builderWithArgs(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigOverridesEarlier(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "issuer"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	// пустое поле во втором конфиге не затирает первое
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// ── withDefaults / withFlags / withJSON ───────────────────────────────────────

func TestWithDefaults_FillsEveryGroup(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "anime-saver", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "anime-saver.db", cfg.Storage.Local.Path)
	assert.Equal(t, "https://api.myanimelist.net/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 10, cfg.Catalog.Limit)
	assert.Equal(t, time.Hour, cfg.Workers.CleanupInterval)
}

func TestWithFlags_OverridesDefaults(t *testing.T) {
	cfg, err := builderWithArgs("-a", "127.0.0.1:8081", "-token-issuer", "flags").
		withDefaults().
		withFlags().
		build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
	assert.Equal(t, "anime-saver.db", cfg.Storage.Local.Path)
}

func TestWithFlags_InvalidFlagIsReported(t *testing.T) {
	cfg, err := builderWithArgs("-a", "not-an-address").withFlags().build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestWithJSON_PathFromFlagsIsApplied(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"version": "9.9.9", "token_duration": "2h"},
		"catalog": map[string]any{"limit": 25},
	})

	cfg, err := builderWithArgs("-c", path).
		withDefaults().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 25, cfg.Catalog.Limit)
	assert.Equal(t, "anime-saver", cfg.App.TokenIssuer)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	before := len(b.configs)

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, before)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	cfg, err := builderWithArgs("-c", "/definitely/missing.json").
		withFlags().
		withJSON().
		build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/anime")
	t.Setenv("CATALOG_CLIENT_ID", "mal-id")
	t.Setenv("WORKERS_CLEANUP_INTERVAL", "15m")

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost/anime", cfg.Storage.DB.DSN)
	assert.Equal(t, "mal-id", cfg.Catalog.ClientID)
	assert.Equal(t, 15*time.Minute, cfg.Workers.CleanupInterval)
}
