// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/anime-saver/models"
)

// NavigateTo switches the root model to the screen registered for Path.
// Replace drops the current screen from the back history; Notice is shown
// as a status line on the new screen.
type NavigateTo struct {
	Path    string
	Replace bool
	Notice  string
}

// NavigateBack returns to the previous screen, or home when there is none.
type NavigateBack struct{}

type alertMsg struct {
	message string
}

type noticeMsg struct {
	text string
}

type serverVersionMsg struct {
	version string
}

type sessionCheckedMsg struct {
	loggedIn bool
}

type loginDoneMsg struct {
	resp models.LoginResponse
	err  error
}

type registerDoneMsg struct {
	email string
	err   error
}

type searchResultsMsg struct {
	query string
	items []models.Anime
}

type topLoadedMsg struct {
	items []models.Anime
}

type seasonalLoadedMsg struct {
	year   int
	season models.Season
	items  []models.Anime
}

type animeLoadedMsg struct {
	anime models.Anime
	ok    bool
}

type savedStateMsg struct {
	loggedIn bool
	entry    *models.SavedAnime
}

type savedListLoadedMsg struct {
	items []models.SavedAnime
}

type sharedListLoadedMsg struct {
	list models.SharedList
	ok   bool
}

type profileLoadedMsg struct {
	user models.User
	ok   bool
}

// mutationDoneMsg reports an add/remove/update of a saved entry.
type mutationDoneMsg struct {
	op      mutationOp
	animeID string
	watched bool
	ok      bool
}

type shareDoneMsg struct {
	link    string
	ok      bool
	copyErr error
}

type loggedOutMsg struct{}

type clearStatusMsg struct{}
