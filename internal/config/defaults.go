// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the local development setup: the API on
// localhost:5000 and the web front-end on localhost:5173.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "anime-saver",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    10,
			PublicURL:     "http://localhost:5173",
			Version:       "0.1.0",
		},
		Storage: Storage{
			Local: Local{Path: "anime-saver.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 10 * time.Second,
		},
		Catalog: Catalog{
			BaseURL:        "https://api.myanimelist.net/v2",
			Limit:          10,
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			CleanupInterval: time.Hour,
		},
		LogLevel:    "debug",
		EnvFilePath: ".env",
	}
}
