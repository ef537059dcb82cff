// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run opens the saved list for a user whose stored identifier is still
// valid and the home menu otherwise. Quitting with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	startPath := tui.PathHome
	if a.services.SessionService.IsLoggedIn(ctx) {
		startPath = tui.PathSavedAnime
	}
	a.logger.Info().Str("start_path", startPath).Msg("starting client")

	err := a.ui.Run(ctx, startPath)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
