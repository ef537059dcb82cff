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

const synopsisWidth = 72

// animeScreen shows one catalogue entry and its place in the saved list.
type animeScreen struct {
	d       *deps
	animeID string

	loading  bool
	found    bool
	anime    models.Anime
	spinner  spinner.Model
	loggedIn bool
	entry    *models.SavedAnime

	status string
}

func newAnimeScreen(d *deps, p Params) screen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &animeScreen{d: d, animeID: p["id"], loading: true, spinner: s}
}

func (m *animeScreen) Init() tea.Cmd {
	d := m.d
	animeID := m.animeID

	loadAnime := func() tea.Msg {
		anime, ok := d.services.CatalogService.GetAnime(d.ctx, animeID)
		return animeLoadedMsg{anime: anime, ok: ok}
	}
	loadState := func() tea.Msg {
		user, ok := d.services.ListService.FetchUser(d.ctx)
		if !ok {
			return savedStateMsg{}
		}
		for _, entry := range user.SavedList {
			if entry.AnimeID == animeID {
				return savedStateMsg{loggedIn: true, entry: &entry}
			}
		}
		return savedStateMsg{loggedIn: true}
	}

	return tea.Batch(m.spinner.Tick, loadAnime, loadState)
}

func (m *animeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animeLoadedMsg:
		m.loading = false
		m.found = msg.ok
		m.anime = msg.anime
		return m, nil
	case savedStateMsg:
		m.loggedIn = msg.loggedIn
		m.entry = msg.entry
		return m, nil
	case mutationDoneMsg:
		if msg.animeID != m.animeID {
			return m, nil
		}
		m.applyMutation(msg)
		m.status = mutationNotice(msg)
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
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
		case key.Matches(msg, keys.add):
			if m.entry == nil {
				return m, m.d.cmdAddAnime(m.animeID)
			}
		case key.Matches(msg, keys.watched):
			if m.entry != nil {
				return m, m.d.cmdSetWatched(m.animeID, !m.entry.Watched)
			}
		case key.Matches(msg, keys.remove):
			if m.entry != nil {
				return m, m.d.cmdRemoveAnime(m.animeID)
			}
		}
	}
	return m, nil
}

func (m *animeScreen) applyMutation(msg mutationDoneMsg) {
	if !msg.ok {
		return
	}
	switch msg.op {
	case opAdd:
		m.loggedIn = true
		m.entry = &models.SavedAnime{AnimeID: msg.animeID}
	case opRemove:
		m.entry = nil
	case opUpdate:
		if m.entry != nil {
			m.entry.Watched = msg.watched
		}
	}
}

func (m *animeScreen) View() string {
	if m.loading {
		return renderPage("ANIME", m.spinner.View()+" Loading...", "esc: back")
	}
	if !m.found {
		return renderPage("ANIME", "Anime "+m.animeID+" was not found", "esc: back")
	}

	a := m.anime
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score:    %s\n", score(a.Mean)))
	b.WriteString(fmt.Sprintf("Episodes: %s\n", episodes(a.NumEpisodes)))
	b.WriteString(fmt.Sprintf("Aired:    %s - %s\n", valueOrDash(a.StartDate), valueOrDash(a.EndDate)))
	b.WriteString(fmt.Sprintf("Status:   %s\n", valueOrDash(strings.ReplaceAll(a.Status, "_", " "))))
	b.WriteString(fmt.Sprintf("Genres:   %s\n", valueOrDash(genreNames(a.Genres))))
	b.WriteString(fmt.Sprintf("My list:  %s\n", m.listState()))

	if a.Synopsis != "" {
		b.WriteString("\n")
		b.WriteString(wrap(a.Synopsis, synopsisWidth))
	}
	b.WriteString(statusLines(m.status, ""))

	return renderPage("ANIME", b.String(), m.hotKeys())
}

func (m *animeScreen) listState() string {
	switch {
	case !m.loggedIn:
		return "log in to save"
	case m.entry == nil:
		return "not saved"
	case m.entry.Watched:
		return "watched"
	default:
		return "plan to watch"
	}
}

func (m *animeScreen) hotKeys() string {
	if m.entry == nil {
		return "a: add to list │ esc: back"
	}
	return "w: toggle watched │ d: remove │ esc: back"
}

func score(mean float64) string {
	if mean <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", mean)
}

func episodes(n int) string {
	if n <= 0 {
		return "?"
	}
	return fmt.Sprint(n)
}

func genreNames(genres []models.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) string {
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wl := len([]rune(word))
		if lineLen > 0 && lineLen+1+wl > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wl
	}
	return b.String()
}
