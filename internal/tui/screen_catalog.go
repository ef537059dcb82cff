// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/anime-saver/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var seasons = []models.Season{models.Winter, models.Spring, models.Summer, models.Fall}

// catalogKeys handles the keys common to the ranking screens.
func catalogKeys(d *deps, list *animeList, msg tea.KeyMsg) (tea.Cmd, bool) {
	if cmd, ok := list.update(msg); ok {
		return cmd, true
	}

	switch {
	case key.Matches(msg, keys.esc):
		return back, true
	case key.Matches(msg, keys.enter):
		return list.openCurrent(), true
	case key.Matches(msg, keys.add):
		item, ok := list.current()
		if !ok {
			return nil, true
		}
		return d.cmdAddAnime(strconv.FormatInt(item.ID, 10)), true
	}
	return nil, false
}

// ── top ──────────────────────────────────────────────────────────────────────

type topScreen struct {
	d      *deps
	list   animeList
	status string
}

func newTopScreen(d *deps, _ Params) screen {
	return &topScreen{d: d, list: newAnimeList()}
}

func (m *topScreen) Init() tea.Cmd {
	d := m.d
	return tea.Batch(m.list.spinner.Tick, func() tea.Msg {
		return topLoadedMsg{items: d.services.CatalogService.TopAnime(d.ctx)}
	})
}

func (m *topScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topLoadedMsg:
		m.list.setItems(msg.items)
		return m, nil
	case mutationDoneMsg:
		m.status = mutationNotice(msg)
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		cmd, _ := catalogKeys(m.d, &m.list, msg)
		return m, cmd
	}

	cmd, _ := m.list.update(msg)
	return m, cmd
}

func (m *topScreen) View() string {
	body := m.list.View("The ranking is empty") + statusLines(m.status, "")
	return renderPage("TOP ANIME", body, "↑/↓: choose │ enter: details │ a: add to list │ esc: back")
}

// ── seasonal ─────────────────────────────────────────────────────────────────

// seasonalScreen starts at the current broadcast season; left/right step
// through seasons across years.
type seasonalScreen struct {
	d      *deps
	year   int
	season models.Season
	list   animeList
	status string
}

func newSeasonalScreen(d *deps, _ Params) screen {
	now := d.now()
	return &seasonalScreen{
		d:      d,
		year:   now.Year(),
		season: models.SeasonOf(now.Month()),
		list:   newAnimeList(),
	}
}

func (m *seasonalScreen) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoad())
}

func (m *seasonalScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case seasonalLoadedMsg:
		if msg.year != m.year || msg.season != m.season {
			return m, nil
		}
		m.list.idx = 0
		m.list.setItems(msg.items)
		return m, nil
	case mutationDoneMsg:
		m.status = mutationNotice(msg)
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.left):
			m.step(-1)
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoad())
		case key.Matches(msg, keys.right):
			m.step(1)
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoad())
		}
		cmd, _ := catalogKeys(m.d, &m.list, msg)
		return m, cmd
	}

	cmd, _ := m.list.update(msg)
	return m, cmd
}

// step moves the selection by delta seasons.
func (m *seasonalScreen) step(delta int) {
	idx := 0
	for i, s := range seasons {
		if s == m.season {
			idx = i
		}
	}

	idx += delta
	switch {
	case idx < 0:
		idx = len(seasons) - 1
		m.year--
	case idx >= len(seasons):
		idx = 0
		m.year++
	}
	m.season = seasons[idx]
	m.list.loading = true
}

func (m *seasonalScreen) cmdLoad() tea.Cmd {
	d := m.d
	year, season := m.year, m.season
	return func() tea.Msg {
		return seasonalLoadedMsg{
			year:   year,
			season: season,
			items:  d.services.CatalogService.SeasonalAnime(d.ctx, year, season),
		}
	}
}

func (m *seasonalScreen) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("◀ %s %d ▶\n\n", strings.ToUpper(string(m.season)), m.year))
	b.WriteString(m.list.View("Nothing airs this season"))
	b.WriteString(statusLines(m.status, ""))

	return renderPage("SEASONAL ANIME", b.String(), "←/→: season │ ↑/↓: choose │ enter: details │ a: add to list │ esc: back")
}
