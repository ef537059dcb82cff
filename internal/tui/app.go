// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/anime-saver/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the TUI router:
//  1. keeps the active screen and the back history
//  2. resolves NavigateTo paths through the route table
//  3. shows service alerts as a modal that must be dismissed
//  4. delegates all other messages to the active screen
type RootModel struct {
	deps   *deps
	router *Router

	path    string
	current screen
	history []string

	alerts []string

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool

	quitByUser bool
}

// NewRootModel opens startPath, or home when the path has no route.
func NewRootModel(d *deps, startPath string, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		deps:      d,
		router:    newRouter(),
		buildInfo: buildInfo,
	}

	if !r.open(startPath) {
		r.open(PathHome)
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.current.Init(), r.cmdServerVersion())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if len(r.alerts) > 0 {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				r.alerts = r.alerts[1:]
			}
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if r.path == PathHome && !capturesInput(r.current) {
			switch {
			case key.Matches(msg, keys.info):
				r.showBuildInfo = true
				return r, nil
			case key.Matches(msg, keys.quit):
				r.quitByUser = true
				return r, tea.Quit
			}
		}

	case alertMsg:
		r.alerts = append(r.alerts, msg.message)
		return r, nil

	case serverVersionMsg:
		r.serverVersion = msg.version
		return r, nil

	case NavigateTo:
		prev := r.path
		if !r.open(msg.Path) {
			r.alerts = append(r.alerts, "Page not found: "+msg.Path)
			return r, nil
		}
		if !msg.Replace && prev != "" {
			r.history = append(r.history, prev)
		}
		return r, r.initCurrent(msg.Notice)

	case NavigateBack:
		target := PathHome
		if n := len(r.history); n > 0 {
			target = r.history[n-1]
			r.history = r.history[:n-1]
		}
		if !r.open(target) {
			r.open(PathHome)
		}
		return r, r.initCurrent("")
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	}

	body := r.current.View()
	if len(r.alerts) > 0 {
		body += "\n\n" + alertOverlayModel{message: r.alerts[0]}.View()
	}
	return appStyle.Render(body)
}

// Path is the path of the active screen.
func (r RootModel) Path() string {
	return r.path
}

func (r *RootModel) open(path string) bool {
	rt, params, ok := r.router.Resolve(path)
	if !ok {
		return false
	}
	r.path = path
	r.current = rt.build(r.deps, params)
	return true
}

func (r RootModel) initCurrent(notice string) tea.Cmd {
	if notice == "" {
		return r.current.Init()
	}
	return tea.Batch(r.current.Init(), func() tea.Msg { return noticeMsg{text: notice} })
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	d := r.deps
	return func() tea.Msg {
		return serverVersionMsg{version: d.services.CatalogService.ServerVersion(d.ctx)}
	}
}

// capturesInput reports whether s is typing into a text field, in which case
// single-letter hotkeys belong to the field.
func capturesInput(s screen) bool {
	c, ok := s.(interface{ capturesInput() bool })
	return ok && c.capturesInput()
}
