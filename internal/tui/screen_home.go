// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label  string
	path   string
	logout bool
	shared bool
}

var (
	catalogueItems = []menuItem{
		{label: "Search anime", path: PathSearch},
		{label: "Top anime", path: PathTopAnime},
		{label: "Seasonal anime", path: PathSeasonal},
		{label: "Open a shared list", shared: true},
	}
	loggedInItems = []menuItem{
		{label: "My saved anime", path: PathSavedAnime},
		{label: "Profile", path: PathProfile},
		{label: "Log out", logout: true},
	}
	loggedOutItems = []menuItem{
		{label: "Log in", path: PathLogin},
		{label: "Register", path: PathRegister},
	}
)

// homeScreen is the main menu. Its entries depend on whether the stored
// identifier is still valid.
type homeScreen struct {
	d *deps

	checking bool
	loggedIn bool
	idx      int

	linkInput textinput.Model
	enterLink bool
	status    string
}

func newHomeScreen(d *deps, _ Params) screen {
	in := textinput.New()
	in.Placeholder = "link or link id"
	in.CharLimit = 256
	in.Width = 48

	return &homeScreen{d: d, checking: true, linkInput: in}
}

func (m *homeScreen) Init() tea.Cmd {
	return m.cmdCheckSession()
}

func (m *homeScreen) items() []menuItem {
	items := append([]menuItem{}, catalogueItems...)
	if m.loggedIn {
		return append(items, loggedInItems...)
	}
	return append(items, loggedOutItems...)
}

func (m *homeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionCheckedMsg:
		m.checking = false
		m.loggedIn = msg.loggedIn
		if m.idx >= len(m.items()) {
			m.idx = 0
		}
		return m, nil
	case loggedOutMsg:
		m.status = "Logged out"
		return m, tea.Batch(m.cmdCheckSession(), clearStatusLater())
	case noticeMsg:
		m.status = msg.text
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.enterLink {
			return m.updateLinkInput(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m *homeScreen) updateMenu(msg tea.KeyMsg) (screen, tea.Cmd) {
	items := m.items()

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.checking {
			return m, nil
		}
		item := items[m.idx]
		switch {
		case item.logout:
			return m, m.cmdLogout()
		case item.shared:
			m.enterLink = true
			m.linkInput.SetValue("")
			return m, m.linkInput.Focus()
		default:
			return m, navigate(item.path)
		}
	}
	return m, nil
}

func (m *homeScreen) updateLinkInput(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.enterLink = false
		m.linkInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		linkID := linkIDFromInput(m.linkInput.Value())
		if linkID == "" {
			return m, nil
		}
		m.enterLink = false
		m.linkInput.Blur()
		return m, navigate(SharedListPath(linkID))
	}

	var cmd tea.Cmd
	m.linkInput, cmd = m.linkInput.Update(msg)
	return m, cmd
}

func (m *homeScreen) capturesInput() bool {
	return m.enterLink
}

func (m *homeScreen) View() string {
	var b strings.Builder

	if m.checking {
		b.WriteString("Checking session...\n\n")
	} else if m.loggedIn {
		b.WriteString("You are logged in.\n\n")
	} else {
		b.WriteString("You are not logged in.\n\n")
	}

	for i, item := range m.items() {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(item.label)
		b.WriteString("\n")
	}

	if m.enterLink {
		b.WriteString("\nShared link: [")
		b.WriteString(m.linkInput.View())
		b.WriteString("]\n")
	}
	b.WriteString(statusLines(m.status, ""))

	hotKeys := "↑/↓: choose │ enter: open │ v: about │ q: quit"
	if m.enterLink {
		hotKeys = "enter: open list │ esc: cancel"
	}
	return renderPage("ANIME SAVER", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *homeScreen) cmdCheckSession() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		return sessionCheckedMsg{loggedIn: d.services.SessionService.IsLoggedIn(d.ctx)}
	}
}

func (m *homeScreen) cmdLogout() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		d.services.SessionService.Logout(d.ctx)
		return loggedOutMsg{}
	}
}
