// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/anime-saver/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginScreen struct {
	d *deps

	form       form
	submitting bool
	status     string
	errMsg     string
}

func newLoginScreen(d *deps, _ Params) screen {
	return &loginScreen{
		d: d,
		form: newForm(
			newInput("email", 254, false),
			newInput("password", 72, true),
		),
	}
}

func (m *loginScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginScreen) capturesInput() bool { return true }

func (m *loginScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Path: PathSavedAnime, Replace: true, Notice: msg.resp.Message}
		}
	case noticeMsg:
		m.status = msg.text
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, back
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.form.value(0))
			pass := m.form.value(1)
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginRequest{UserEmail: email, UserPassword: pass})
		}
	}

	return m, m.form.update(msg)
}

func (m *loginScreen) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]")
	} else {
		b.WriteString("\n[Log in]")
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	return renderPage("LOG IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *loginScreen) cmdLogin(req models.LoginRequest) tea.Cmd {
	d := m.d
	return func() tea.Msg {
		resp, err := d.services.SessionService.Login(d.ctx, req)
		return loginDoneMsg{resp: resp, err: err}
	}
}
