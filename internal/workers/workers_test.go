// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingPurger считает вызовы PurgeExpired
type countingPurger struct {
	calls atomic.Int64
	err   error
}

func (c *countingPurger) PurgeExpired(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

// mockWorker is a test implementation of the Worker interface.
type mockWorker struct {
	started, stopped int
}

func (m *mockWorker) Start(context.Context) { m.started++ }
func (m *mockWorker) Stop()                 { m.stopped++ }

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_StartStop_AllWorkersAreCalled(t *testing.T) {
	w1, w2 := &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ws.Start(context.Background())
	ws.Stop()

	for _, w := range []*mockWorker{w1, w2} {
		assert.Equal(t, 1, w.started)
		assert.Equal(t, 1, w.stopped)
	}
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestNewWorkers(t *testing.T) {
	purger := &countingPurger{}

	assert.Empty(t, NewWorkers(purger, config.Workers{}, logger.Nop()).workers)
	assert.Len(t, NewWorkers(purger, config.Workers{CleanupInterval: time.Minute}, logger.Nop()).workers, 1)
}

// ── sharedLinkJanitor ────────────────────────────────────────────────────────

func TestJanitor_PurgesOnTicker(t *testing.T) {
	purger := &countingPurger{}
	janitor := NewSharedLinkJanitor(purger, 5*time.Millisecond, logger.Nop())

	janitor.Start(context.Background())
	require.Eventually(t, func() bool { return purger.calls.Load() >= 3 }, time.Second, time.Millisecond)
	janitor.Stop()

	// после Stop вызовов больше нет
	calls := purger.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, purger.calls.Load())
}

func TestJanitor_KeepsRunningAfterError(t *testing.T) {
	purger := &countingPurger{err: errors.New("db down")}
	janitor := NewSharedLinkJanitor(purger, 5*time.Millisecond, logger.Nop())

	janitor.Start(context.Background())
	defer janitor.Stop()

	require.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestJanitor_StopsOnContextCancel(t *testing.T) {
	purger := &countingPurger{}
	janitor := NewSharedLinkJanitor(purger, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	janitor.Start(ctx)
	cancel()

	// Stop всё равно дожидается выхода горутины; goleak проверит остальное
	janitor.Stop()
}

func TestJanitor_RestartAndDoubleStop(t *testing.T) {
	janitor := NewSharedLinkJanitor(&countingPurger{}, time.Hour, logger.Nop())

	janitor.Start(context.Background())
	janitor.Start(context.Background())
	janitor.Stop()
	janitor.Stop()
}

func TestJanitor_DefaultInterval(t *testing.T) {
	janitor := NewSharedLinkJanitor(&countingPurger{}, 0, logger.Nop()).(*sharedLinkJanitor)

	assert.Equal(t, defaultCleanupInterval, janitor.interval)
}
