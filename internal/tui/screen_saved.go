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

// savedScreen lists the saved anime of the logged-in user.
type savedScreen struct {
	d *deps

	items   []models.SavedAnime
	idx     int
	loading bool
	spinner spinner.Model

	pendingRemove string
	sharing       bool
	shareLink     string
	status        string
}

func newSavedScreen(d *deps, _ Params) screen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &savedScreen{d: d, loading: true, spinner: s}
}

func (m *savedScreen) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *savedScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedListLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.clampCursor()
		return m, nil
	case mutationDoneMsg:
		m.items = applyMutation(m.items, msg)
		m.clampCursor()
		m.status = mutationNotice(msg)
		return m, clearStatusLater()
	case shareDoneMsg:
		m.sharing = false
		if !msg.ok {
			return m, nil
		}
		m.shareLink = msg.link
		if msg.copyErr != nil {
			m.status = "Share link created"
		} else {
			m.status = "Share link copied to clipboard"
		}
		return m, clearStatusLater()
	case noticeMsg:
		m.status = msg.text
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.loading || m.sharing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if m.pendingRemove != "" {
			return m, m.updateConfirm(msg)
		}
		return m, m.updateList(msg)
	}
	return m, nil
}

func (m *savedScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	item, hasItem := m.current()

	switch {
	case key.Matches(msg, keys.esc):
		return back
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if hasItem {
			return navigate(AnimePath(item.AnimeID))
		}
	case key.Matches(msg, keys.watched):
		if hasItem {
			return m.d.cmdSetWatched(item.AnimeID, !item.Watched)
		}
	case key.Matches(msg, keys.remove):
		if hasItem {
			m.pendingRemove = item.AnimeID
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.share):
		if m.sharing || m.loading {
			return nil
		}
		m.sharing = true
		return tea.Batch(m.spinner.Tick, m.cmdShare())
	}
	return nil
}

func (m *savedScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		animeID := m.pendingRemove
		m.pendingRemove = ""
		return m.d.cmdRemoveAnime(animeID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.pendingRemove = ""
	}
	return nil
}

func (m *savedScreen) current() (models.SavedAnime, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.SavedAnime{}, false
	}
	return m.items[m.idx], true
}

func (m *savedScreen) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *savedScreen) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...")
	case len(m.items) == 0:
		b.WriteString("Your list is empty. Add anime from search, top or seasonal lists.")
	default:
		watched := 0
		for i, item := range m.items {
			mark := "[ ]"
			line := "anime #" + item.AnimeID
			if item.Watched {
				watched++
				mark = "[x]"
				line = watchedStyle.Render(line)
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor(i == m.idx), mark, line))
		}
		b.WriteString(fmt.Sprintf("\n%d saved, %d watched", len(m.items), watched))
	}

	if m.sharing {
		b.WriteString("\n\n" + m.spinner.View() + " Creating share link...")
	}
	if m.shareLink != "" {
		b.WriteString("\n\nShare link: " + m.shareLink)
	}
	if m.pendingRemove != "" {
		b.WriteString("\n\n" + overlayBoxStyle.Render("Remove anime #"+m.pendingRemove+" from your list?\n\ny: yes │ n: no"))
	}
	b.WriteString(statusLines(m.status, ""))

	return renderPage("MY SAVED ANIME", b.String(),
		"↑/↓: choose │ enter: details │ w: toggle watched │ d: remove │ s: share │ r: reload │ esc: back")
}

func (m *savedScreen) cmdLoad() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		return savedListLoadedMsg{items: d.services.ListService.FetchSavedList(d.ctx)}
	}
}

// cmdShare publishes the list and copies the link. A clipboard failure only
// changes the status line, the link is still shown.
func (m *savedScreen) cmdShare() tea.Cmd {
	d := m.d
	return func() tea.Msg {
		link, ok := d.services.ListService.ShareList(d.ctx)
		if !ok {
			return shareDoneMsg{}
		}
		err := d.copyClipboard(link)
		if err != nil {
			d.logger.Warn().Err(err).Str("func", "*savedScreen.cmdShare").Msg("clipboard unavailable")
		}
		return shareDoneMsg{link: link, ok: true, copyErr: err}
	}
}
