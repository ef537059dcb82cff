// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front-end the client hands control to.
type UI interface {
	// Run shows startPath and blocks until the user leaves.
	Run(ctx context.Context, startPath string) error
}
