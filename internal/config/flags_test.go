// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Server.HTTPAddress)
	assert.Equal(t, "", cfg.JSONFilePath)
}

func TestParseFlags_AllValues(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:5000",
		"-grpc-address", ":5001",
		"-d", "postgres://db",
		"-l", "/tmp/session.db",
		"-s", "http://localhost:5000",
		"-config", "/etc/anime-saver.json",
		"-token-sign-key", "key",
		"-token-issuer", "iss",
		"-token-duration", "90m",
		"-request-timeout", "5s",
		"-mal-client-id", "client",
		"-public-url", "https://anime.example",
		"-log-level", "info",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":5001", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.Local.Path)
	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/etc/anime-saver.json", cfg.JSONFilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	// таймаут применяется и к серверу, и к адаптеру
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client", cfg.Catalog.ClientID)
	assert.Equal(t, "https://anime.example", cfg.App.PublicURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:1", want: NetAddress{Host: "127.0.0.1", Port: 1}},
		{name: "empty host", input: ":65535", want: NetAddress{Port: 65535}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:65536", wantErr: true},
		{name: "bad ip", input: "999.1.1.1:80", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:80", (&NetAddress{Host: "localhost", Port: 80}).String())
	assert.Equal(t, ":80", (&NetAddress{Port: 80}).String())
}
