// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	add       key.Binding
	watched   key.Binding
	remove    key.Binding
	share     key.Binding
	reload    key.Binding
	logout    key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
	forceQuit key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h", "[")),
	right:     key.NewBinding(key.WithKeys("right", "l", "]")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	add:       key.NewBinding(key.WithKeys("a")),
	watched:   key.NewBinding(key.WithKeys("w")),
	remove:    key.NewBinding(key.WithKeys("d")),
	share:     key.NewBinding(key.WithKeys("s")),
	reload:    key.NewBinding(key.WithKeys("r")),
	logout:    key.NewBinding(key.WithKeys("o")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
