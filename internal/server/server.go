// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/handler"
	"github.com/MKhiriev/anime-saver/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// BackgroundJobs run alongside the transports for the server's lifetime.
type BackgroundJobs interface {
	Start(ctx context.Context)
	Stop()
}

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	jobs       BackgroundJobs
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, jobs BackgroundJobs, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{jobs: jobs, logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports() {
		t.Shutdown(ctx)
	}
	if s.jobs != nil {
		s.jobs.Stop()
	}
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

// run blocks until ctx is done or any transport fails, then shuts
// everything down. The first transport error is returned.
func (s *server) run(ctx context.Context) error {
	ts := s.transports()
	if len(ts) == 0 {
		return errNoServersToRun
	}

	if s.jobs != nil {
		s.jobs.Start(ctx)
	}

	errCh := make(chan error, len(ts))
	for _, t := range ts {
		go func() {
			errCh <- t.RunServer()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Err(runErr).Str("func", "*server.run").Msg("transport failed")
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
