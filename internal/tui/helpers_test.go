// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/service/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// статусы в тестах не должны ждать по 3 секунды
	statusTTL = time.Millisecond
	os.Exit(m.Run())
}

type tuiFixture struct {
	session *mock.MockClientSessionService
	list    *mock.MockClientListService
	catalog *mock.MockClientCatalogService

	d      *deps
	copied []string
}

func newFixture(t *testing.T) *tuiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &tuiFixture{
		session: mock.NewMockClientSessionService(ctrl),
		list:    mock.NewMockClientListService(ctrl),
		catalog: mock.NewMockClientCatalogService(ctrl),
	}
	f.d = &deps{
		ctx: context.Background(),
		services: &service.ClientServices{
			SessionService: f.session,
			ListService:    f.list,
			CatalogService: f.catalog,
		},
		logger: logger.Nop(),
		now: func() time.Time {
			return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
		},
		copyClipboard: func(s string) error {
			f.copied = append(f.copied, s)
			return nil
		},
	}
	return f
}

func (f *tuiFixture) brokenClipboard() {
	f.d.copyClipboard = func(string) error { return errors.New("no clipboard") }
}

// run executes cmd and every command of a batch, returning the produced
// messages in order.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// find returns the first message of type T.
func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// feed delivers every message of msgs of type T to s.
func feed[T any](s screen, msgs []tea.Msg) (screen, tea.Cmd) {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		if _, ok := msg.(T); ok {
			var cmd tea.Cmd
			s, cmd = s.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return s, tea.Batch(cmds...)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// typeInto types text into the focused field of s.
func typeInto(s screen, text string) screen {
	s, _ = s.Update(keyRunes(text))
	return s
}
