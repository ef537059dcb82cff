// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to remote
// HTTP APIs.
//
// [ServerAdapter] is used by the terminal client to reach the anime-saver
// user-service. [CatalogAdapter] is used by the server to reach the
// MyAnimeList v2 API. Both are implemented on top of resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/anime-saver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the anime-saver user-service.
// Implementations are responsible for serialisation, bearer header management
// and mapping transport-level errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to admin requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. The server answers 201 with no token.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login checks the credentials and returns the login body. The bearer
	// token from the Authorization header is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GetUser fetches the user record addressed by userID.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// AddAnime saves an anime to the user's list.
	AddAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error

	// RemoveAnime removes an anime from the user's list.
	RemoveAnime(ctx context.Context, userID string, req models.RemoveAnimeRequest) error

	// UpdateAnime changes the watched flag of a saved anime.
	UpdateAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error

	// ShareList publishes a snapshot of a list and returns its public link.
	ShareList(ctx context.Context, req models.ShareListRequest) (string, error)

	// GetSharedList resolves a shared link identifier.
	GetSharedList(ctx context.Context, linkID string) (models.SharedList, error)

	// SearchAnime queries the catalogue through the user-service proxy.
	SearchAnime(ctx context.Context, query string) ([]models.Anime, error)

	// GetAnime fetches a single catalogue entry.
	GetAnime(ctx context.Context, animeID string) (models.Anime, error)

	// TopAnime fetches the top-ranked titles.
	TopAnime(ctx context.Context) ([]models.Anime, error)

	// SeasonalAnime fetches titles aired in the given season.
	SeasonalAnime(ctx context.Context, year int, season models.Season) ([]models.Anime, error)

	// AdminData fetches the admin-only payload. Requires a token from Login.
	AdminData(ctx context.Context) (string, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}

// CatalogAdapter defines read access to the MyAnimeList catalogue.
type CatalogAdapter interface {
	// Search returns up to the configured limit of titles matching query.
	Search(ctx context.Context, query string) ([]models.Anime, error)

	// Get returns one title by its MyAnimeList id.
	Get(ctx context.Context, animeID int64) (models.Anime, error)

	// Top returns the all-time ranking.
	Top(ctx context.Context) ([]models.Anime, error)

	// Seasonal returns the titles of a broadcast season.
	Seasonal(ctx context.Context, year int, season models.Season) ([]models.Anime, error)
}
