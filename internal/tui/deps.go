// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
var statusTTL = 3 * time.Second

// screen is a page of the application. Screens are rebuilt on every
// navigation, so each Init loads fresh data.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

// deps is shared by every screen of one program run.
type deps struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	now           func() time.Time
	copyClipboard func(string) error
}

func newDeps(ctx context.Context, services *service.ClientServices, logger *logger.Logger) *deps {
	return &deps{
		ctx:           ctx,
		services:      services,
		logger:        logger,
		now:           time.Now,
		copyClipboard: clipboard.WriteAll,
	}
}

type mutationOp int

const (
	opAdd mutationOp = iota
	opRemove
	opUpdate
)

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}

func back() tea.Msg {
	return NavigateBack{}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (d *deps) cmdAddAnime(animeID string) tea.Cmd {
	return func() tea.Msg {
		ok := d.services.ListService.AddAnime(d.ctx, animeID)
		return mutationDoneMsg{op: opAdd, animeID: animeID, ok: ok}
	}
}

func (d *deps) cmdRemoveAnime(animeID string) tea.Cmd {
	return func() tea.Msg {
		ok := d.services.ListService.RemoveAnime(d.ctx, animeID)
		return mutationDoneMsg{op: opRemove, animeID: animeID, ok: ok}
	}
}

func (d *deps) cmdSetWatched(animeID string, watched bool) tea.Cmd {
	return func() tea.Msg {
		ok := d.services.ListService.UpdateAnime(d.ctx, animeID, watched)
		return mutationDoneMsg{op: opUpdate, animeID: animeID, watched: watched, ok: ok}
	}
}

func mutationNotice(msg mutationDoneMsg) string {
	if !msg.ok {
		return ""
	}
	switch msg.op {
	case opAdd:
		return "Added to your list"
	case opRemove:
		return "Removed from your list"
	default:
		if msg.watched {
			return "Marked as watched"
		}
		return "Marked as not watched"
	}
}

// applyMutation mirrors a successful mutation on a locally held list.
func applyMutation(list []models.SavedAnime, msg mutationDoneMsg) []models.SavedAnime {
	if !msg.ok {
		return list
	}

	idx := -1
	for i, entry := range list {
		if entry.AnimeID == msg.animeID {
			idx = i
			break
		}
	}

	switch msg.op {
	case opAdd:
		if idx == -1 {
			list = append(list, models.SavedAnime{AnimeID: msg.animeID})
		}
	case opRemove:
		if idx != -1 {
			list = append(list[:idx:idx], list[idx+1:]...)
		}
	case opUpdate:
		if idx != -1 {
			list[idx].Watched = msg.watched
		}
	}
	return list
}
