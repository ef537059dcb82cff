// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/anime-saver/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profileScreen struct {
	d *deps

	loading bool
	ok      bool
	user    models.User
}

func newProfileScreen(d *deps, _ Params) screen {
	return &profileScreen{d: d, loading: true}
}

func (m *profileScreen) Init() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		user, ok := d.services.ListService.FetchUser(d.ctx)
		return profileLoadedMsg{user: user, ok: ok}
	}
}

func (m *profileScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.ok = msg.ok
		m.user = msg.user
		return m, nil
	case loggedOutMsg:
		return m, func() tea.Msg { return NavigateTo{Path: PathHome, Replace: true, Notice: "Logged out"} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, back
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.enter):
			if !m.loading && !m.ok {
				return m, navigate(PathLogin)
			}
		}
	}
	return m, nil
}

func (m *profileScreen) View() string {
	if m.loading {
		return renderPage("PROFILE", "Loading...", "esc: back")
	}
	if !m.ok {
		return renderPage("PROFILE", "You are not logged in.", "enter: log in │ esc: back")
	}

	watched := 0
	for _, entry := range m.user.SavedList {
		if entry.Watched {
			watched++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name:    %s\n", valueOrDash(m.user.Name)))
	b.WriteString(fmt.Sprintf("Email:   %s\n", valueOrDash(m.user.Email)))
	b.WriteString(fmt.Sprintf("Saved:   %d\n", len(m.user.SavedList)))
	b.WriteString(fmt.Sprintf("Watched: %d", watched))
	if m.user.IsAdmin {
		b.WriteString("\nRole:    admin")
	}

	return renderPage("PROFILE", b.String(), "o: log out │ esc: back")
}

func (m *profileScreen) cmdLogout() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		d.services.SessionService.Logout(d.ctx)
		return loggedOutMsg{}
	}
}
