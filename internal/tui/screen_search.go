// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchScreen has two focus areas: the query field and the result list.
type searchScreen struct {
	d *deps

	query     textinput.Model
	inResults bool
	searched  string
	list      animeList
	status    string
	errMsg    string
}

func newSearchScreen(d *deps, _ Params) screen {
	query := newInput("title", 100, false)
	query.Focus()

	list := newAnimeList()
	list.loading = false

	return &searchScreen{d: d, query: query, list: list}
}

func (m *searchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (m *searchScreen) capturesInput() bool { return !m.inResults }

func (m *searchScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		if msg.query != m.searched {
			return m, nil
		}
		m.list.setItems(msg.items)
		if len(msg.items) > 0 {
			m.inResults = true
			m.query.Blur()
		}
		return m, nil
	case mutationDoneMsg:
		m.status = mutationNotice(msg)
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, back
		}
		if key.Matches(msg, keys.tab) || key.Matches(msg, keys.backtab) {
			m.toggleFocus()
			return m, nil
		}
		if m.inResults {
			return m, m.updateResults(msg)
		}
		if key.Matches(msg, keys.enter) {
			return m, m.search()
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	listCmd, _ := m.list.update(msg)
	var inputCmd tea.Cmd
	m.query, inputCmd = m.query.Update(msg)
	return m, tea.Batch(listCmd, inputCmd)
}

func (m *searchScreen) updateResults(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.list.update(msg); ok {
		return cmd
	}

	switch {
	case key.Matches(msg, keys.enter):
		return m.list.openCurrent()
	case key.Matches(msg, keys.add):
		item, ok := m.list.current()
		if !ok {
			return nil
		}
		return m.d.cmdAddAnime(strconv.FormatInt(item.ID, 10))
	}
	return nil
}

func (m *searchScreen) toggleFocus() {
	if m.inResults {
		m.inResults = false
		m.query.Focus()
		return
	}
	if len(m.list.items) > 0 {
		m.inResults = true
		m.query.Blur()
	}
}

func (m *searchScreen) search() tea.Cmd {
	query := strings.TrimSpace(m.query.Value())
	if query == "" {
		m.errMsg = "Enter a title to search"
		return nil
	}

	m.errMsg = ""
	m.searched = query
	m.list.loading = true

	d := m.d
	return tea.Batch(m.list.spinner.Tick, func() tea.Msg {
		return searchResultsMsg{query: query, items: d.services.CatalogService.SearchAnime(d.ctx, query)}
	})
}

func (m *searchScreen) View() string {
	var b strings.Builder
	b.WriteString("Search: [")
	b.WriteString(m.query.View())
	b.WriteString("]\n\n")

	empty := "Type a title and press enter"
	if m.searched != "" {
		empty = "Nothing found for \"" + m.searched + "\""
	}
	b.WriteString(m.list.View(empty))
	b.WriteString(statusLines(m.status, m.errMsg))

	hotKeys := "enter: search │ tab: results │ esc: back"
	if m.inResults {
		hotKeys = "↑/↓: choose │ enter: details │ a: add to list │ tab: query │ esc: back"
	}
	return renderPage("SEARCH", b.String(), hotKeys)
}
