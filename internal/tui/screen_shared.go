// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/anime-saver/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// sharedScreen is the read-only view of somebody's published list. It needs
// no session.
type sharedScreen struct {
	d      *deps
	linkID string

	loading bool
	found   bool
	list    models.SharedList
	idx     int
	spinner spinner.Model
}

func newSharedScreen(d *deps, p Params) screen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &sharedScreen{d: d, linkID: p["link_id"], loading: true, spinner: s}
}

func (m *sharedScreen) Init() tea.Cmd {
	d := m.d
	linkID := m.linkID
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		list, ok := d.services.CatalogService.GetSharedList(d.ctx, linkID)
		return sharedListLoadedMsg{list: list, ok: ok}
	})
}

func (m *sharedScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sharedListLoadedMsg:
		m.loading = false
		m.found = msg.ok
		m.list = msg.list
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, back
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.list.AnimeList)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if m.idx < len(m.list.AnimeList) {
				return m, navigate(AnimePath(m.list.AnimeList[m.idx].AnimeID))
			}
		}
	}
	return m, nil
}

func (m *sharedScreen) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...")
	case !m.found:
		b.WriteString("Link " + m.linkID + " does not exist or has expired")
	case len(m.list.AnimeList) == 0:
		b.WriteString("This shared list is empty")
	default:
		for i, item := range m.list.AnimeList {
			mark := "[ ]"
			if item.Watched {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s%s anime #%s\n", cursor(i == m.idx), mark, item.AnimeID))
		}
	}

	return renderPage("SHARED LIST", strings.TrimRight(b.String(), "\n"), "↑/↓: choose │ enter: details │ esc: back")
}
