// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the server-side view of [StructuredConfig].
type ServerConfig struct {
	App      App
	Storage  Storage
	Server   Server
	Catalog  Catalog
	Workers  Workers
	LogLevel string
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:      cfg.App,
		Storage:  cfg.Storage,
		Server:   cfg.Server,
		Catalog:  cfg.Catalog,
		Workers:  cfg.Workers,
		LogLevel: cfg.LogLevel,
	}

	return serverCfg, serverCfg.validate()
}
