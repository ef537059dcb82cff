// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/anime-saver/internal/logger"
)

// defaultCleanupInterval is used when the janitor is given a non-positive
// interval.
const defaultCleanupInterval = time.Hour

// sharedLinkJanitor purges expired shared links on a ticker.
type sharedLinkJanitor struct {
	purger   Purger
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewSharedLinkJanitor(purger Purger, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &sharedLinkJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Start stops a previous run, then purges once every interval until ctx is
// cancelled or Stop is called.
func (j *sharedLinkJanitor) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.purge(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("shared link janitor started")
}

func (j *sharedLinkJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sharedLinkJanitor) purge(ctx context.Context) {
	deleted, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*sharedLinkJanitor.purge").Msg("error purging shared links")
		return
	}
	if deleted > 0 {
		j.logger.Info().Int64("deleted", deleted).Msg("expired shared links purged")
	}
}
