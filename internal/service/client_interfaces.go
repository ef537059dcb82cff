// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/anime-saver/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=mock/client_service_mock.go -package=mock

// Alerter shows a blocking message to the user. The terminal client renders
// it as a modal that has to be dismissed.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// ClientSessionService owns the stored user identifier.
type ClientSessionService interface {
	// IsLoggedIn reports whether the stored identifier names an existing
	// user. Without a stored identifier no request is made. Every failure
	// (404, id mismatch, network error) reads as false.
	IsLoggedIn(ctx context.Context) bool

	// Logout removes the stored identifier. It never fails and makes no
	// request.
	Logout(ctx context.Context)

	// Authenticate verifies the stored identifier once and returns a session
	// bound to it. Returns ErrNotLoggedIn if the check fails.
	Authenticate(ctx context.Context) (*AuthenticatedSession, error)

	// Login checks the credentials on the server and stores the returned
	// identifier.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) error
}

// ClientListService is the check-then-act API over the saved list. Each call
// authenticates anew and reports failures through the Alerter or a false /
// empty result instead of an error.
type ClientListService interface {
	AddAnime(ctx context.Context, animeID string) bool
	RemoveAnime(ctx context.Context, animeID string) bool
	UpdateAnime(ctx context.Context, animeID string, watched bool) bool

	// FetchUser returns the verified user record, or false when logged out.
	FetchUser(ctx context.Context) (models.User, bool)

	// FetchSavedList never returns nil.
	FetchSavedList(ctx context.Context) []models.SavedAnime

	// ShareList publishes the saved list and returns the link.
	ShareList(ctx context.Context) (string, bool)
}

// ClientCatalogService serves the read-only views that need no session.
type ClientCatalogService interface {
	SearchAnime(ctx context.Context, query string) []models.Anime
	GetAnime(ctx context.Context, animeID string) (models.Anime, bool)
	TopAnime(ctx context.Context) []models.Anime
	SeasonalAnime(ctx context.Context, year int, season models.Season) []models.Anime
	GetSharedList(ctx context.Context, linkID string) (models.SharedList, bool)
	ServerVersion(ctx context.Context) string
}
