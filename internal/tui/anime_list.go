// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/anime-saver/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const titleWidth = 48

// animeList is the cursor list shared by the catalogue screens.
type animeList struct {
	items   []models.Anime
	idx     int
	loading bool
	spinner spinner.Model
}

func newAnimeList() animeList {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return animeList{spinner: s, loading: true}
}

func (l *animeList) setItems(items []models.Anime) {
	l.loading = false
	l.items = items
	if l.idx >= len(l.items) {
		l.idx = len(l.items) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l animeList) current() (models.Anime, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.Anime{}, false
	}
	return l.items[l.idx], true
}

// update handles cursor movement and the spinner. The second result reports
// whether msg was consumed.
func (l *animeList) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if l.idx > 0 {
				l.idx--
			}
			return nil, true
		case key.Matches(msg, keys.down):
			if l.idx < len(l.items)-1 {
				l.idx++
			}
			return nil, true
		}
	case spinner.TickMsg:
		if l.loading {
			var cmd tea.Cmd
			l.spinner, cmd = l.spinner.Update(msg)
			return cmd, true
		}
		return nil, true
	}
	return nil, false
}

// openCurrent navigates to the detail screen of the selected entry.
func (l animeList) openCurrent() tea.Cmd {
	item, ok := l.current()
	if !ok {
		return nil
	}
	return navigate(AnimePath(strconv.FormatInt(item.ID, 10)))
}

func (l animeList) View(empty string) string {
	if l.loading {
		return l.spinner.View() + " Loading..."
	}
	if len(l.items) == 0 {
		return empty
	}

	var b strings.Builder
	for i, item := range l.items {
		b.WriteString(cursor(i == l.idx))
		b.WriteString(fmt.Sprintf("%-*s", titleWidth, fitText(item.Title, titleWidth)))
		if item.Mean > 0 {
			b.WriteString(fmt.Sprintf("  ★ %.2f", item.Mean))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
