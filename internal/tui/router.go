// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"net/url"
	"strings"
)

// Screen paths. A segment starting with ':' is a parameter handed to the
// screen.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathRegister   = "/register"
	PathSearch     = "/search"
	PathAnime      = "/anime/:id"
	PathSavedAnime = "/saved-anime"
	PathSharedList = "/shared-list/:link_id"
	PathTopAnime   = "/top-anime"
	PathSeasonal   = "/seasonal-anime"
	PathProfile    = "/profile"
)

// Params holds the values captured by ':name' segments.
type Params map[string]string

// screenFactory builds a fresh screen for a resolved route.
type screenFactory func(d *deps, p Params) screen

type route struct {
	pattern  string
	segments []string
	build    screenFactory
}

// Router maps paths to screens. The table is fixed at construction.
type Router struct {
	routes []route
}

func newRouter() *Router {
	r := &Router{}
	r.handle(PathHome, newHomeScreen)
	r.handle(PathLogin, newLoginScreen)
	r.handle(PathRegister, newRegisterScreen)
	r.handle(PathSearch, newSearchScreen)
	r.handle(PathAnime, newAnimeScreen)
	r.handle(PathSavedAnime, newSavedScreen)
	r.handle(PathSharedList, newSharedScreen)
	r.handle(PathTopAnime, newTopScreen)
	r.handle(PathSeasonal, newSeasonalScreen)
	r.handle(PathProfile, newProfileScreen)
	return r
}

func (r *Router) handle(pattern string, build screenFactory) {
	r.routes = append(r.routes, route{
		pattern:  pattern,
		segments: splitPath(pattern),
		build:    build,
	})
}

// Resolve returns the route registered for path together with its
// parameters. A trailing slash is ignored; an empty parameter never matches.
func (r *Router) Resolve(path string) (route, Params, bool) {
	parts := splitPath(path)

	for _, rt := range r.routes {
		if params, ok := rt.match(parts); ok {
			return rt, params, true
		}
	}
	return route{}, nil, false
}

func (rt route) match(parts []string) (Params, bool) {
	if len(parts) != len(rt.segments) {
		return nil, false
	}

	params := Params{}
	for i, seg := range rt.segments {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			value, err := url.PathUnescape(parts[i])
			if err != nil || value == "" {
				return nil, false
			}
			params[name] = value
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// AnimePath builds the detail path of a catalogue entry.
func AnimePath(animeID string) string {
	return "/anime/" + url.PathEscape(animeID)
}

// SharedListPath builds the path of a shared list.
func SharedListPath(linkID string) string {
	return "/shared-list/" + url.PathEscape(linkID)
}

// linkIDFromInput accepts either a bare link id or a full share link and
// returns the id.
func linkIDFromInput(input string) string {
	input = strings.TrimSpace(input)
	if _, after, ok := strings.Cut(input, "/shared-list/"); ok {
		input = after
	}
	return strings.Trim(input, "/")
}
