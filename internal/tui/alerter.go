// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Alerter shows service alerts as a modal on top of the current screen.
// Alerts raised while no program is running are kept and shown once the
// next program starts.
type Alerter struct {
	mu      sync.Mutex
	program *tea.Program
	pending []string

	logger *logger.Logger
}

var _ service.Alerter = (*Alerter)(nil)

func NewAlerter(logger *logger.Logger) *Alerter {
	return &Alerter{logger: logger}
}

func (a *Alerter) Alert(ctx context.Context, message string) {
	logger.FromContext(ctx).Debug().Str("alert", message).Msg("alert raised")

	a.mu.Lock()
	p := a.program
	if p == nil {
		a.pending = append(a.pending, message)
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	p.Send(alertMsg{message: message})
}

func (a *Alerter) attach(p *tea.Program) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.program = p
}

// drain returns and forgets the alerts raised before a program was attached.
func (a *Alerter) drain() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	pending := a.pending
	a.pending = nil
	return pending
}

type alertOverlayModel struct {
	message string
}

func (m alertOverlayModel) View() string {
	content := titleStyle.Render("Alert") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
