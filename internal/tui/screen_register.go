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

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldRepeat
)

// registerScreen creates an account. It does not log in; on success the
// login screen replaces it.
type registerScreen struct {
	d *deps

	form       form
	submitting bool
	errMsg     string
}

func newRegisterScreen(d *deps, _ Params) screen {
	return &registerScreen{
		d: d,
		form: newForm(
			newInput("name", 64, false),
			newInput("email", 254, false),
			newInput("password (6+ chars)", 72, true),
			newInput("repeat password", 72, true),
		),
	}
}

func (m *registerScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (m *registerScreen) capturesInput() bool { return true }

func (m *registerScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Path: PathLogin, Replace: true, Notice: "Registered " + msg.email + ", please log in"}
		}
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
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *registerScreen) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	req := models.RegisterRequest{
		UserName:     strings.TrimSpace(m.form.value(fieldName)),
		UserEmail:    strings.TrimSpace(m.form.value(fieldEmail)),
		UserPassword: m.form.value(fieldPassword),
	}
	if req.UserName == "" || req.UserEmail == "" || req.UserPassword == "" {
		m.errMsg = "Name, email and password are required"
		return nil
	}
	if req.UserPassword != m.form.value(fieldRepeat) {
		m.errMsg = "Passwords do not match"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	d := m.d
	return func() tea.Msg {
		err := d.services.SessionService.Register(d.ctx, req)
		return registerDoneMsg{email: req.UserEmail, err: err}
	}
}

func (m *registerScreen) View() string {
	labels := []string{"Name     ", "Email    ", "Password ", "Repeat   "}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]")
	} else {
		b.WriteString("\n[Register]")
	}
	b.WriteString(statusLines("", m.errMsg))

	return renderPage("REGISTER", b.String(), "esc: back │ tab: next field │ enter: submit")
}
