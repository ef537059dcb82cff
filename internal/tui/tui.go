// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the anime-saver client.
//
// Screens are selected by path through a fixed route table (see
// [Router]); every screen loads its data through the client services in
// Bubble Tea commands so rendering never waits on the network.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	alerter   *Alerter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, alerter *Alerter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if alerter == nil {
		alerter = NewAlerter(logger)
	}

	return &TUI{
		services:  services,
		alerter:   alerter,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows startPath and blocks until the user quits. ErrUserQuit is
// returned when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context, startPath string) error {
	root := NewRootModel(newDeps(ctx, t.services, t.logger), startPath, t.buildInfo)
	root.alerts = t.alerter.drain()

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.alerter.attach(p)
	defer t.alerter.attach(nil)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
