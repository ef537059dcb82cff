// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the user-service address used by the client.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound client request.
	RequestTimeout time.Duration
}

// ClientStorage holds the local session store settings.
type ClientStorage struct {
	// Path is the SQLite file holding the stored user identifier.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the user-service address and timeout.
	Adapter ClientAdapter
	// Storage contains the local store settings.
	Storage ClientStorage
	// LogLevel is the minimum log level.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
		LogLevel: cfg.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
