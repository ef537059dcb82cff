// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's workers. The shared-link janitor is left
// out when no cleanup interval is configured.
func NewWorkers(sharedLinks Purger, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.CleanupInterval > 0 {
		w.workers = append(w.workers, NewSharedLinkJanitor(sharedLinks, cfg.CleanupInterval, logger))
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
