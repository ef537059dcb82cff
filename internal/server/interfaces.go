// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the anime-saver server process.
type Server interface {
	// RunServer starts every transport and the background workers, and
	// blocks until a stop signal arrives or a transport fails.
	RunServer() error

	// Shutdown gracefully stops transports and workers.
	Shutdown()
}

// transport is a single listener managed by server.
type transport interface {
	RunServer() error
	Shutdown(ctx context.Context)
}
