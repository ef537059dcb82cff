// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs.
//
// A [Worker] is started with a context and stopped explicitly; [Workers]
// starts and stops a set of them together with the server.
package workers

import "context"

// Worker is a background job.
//
// Start must not block: the job runs in its own goroutine until ctx is
// cancelled or Stop is called. Stop blocks until the goroutine has exited
// and is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Purger deletes expired records and reports how many were removed.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
