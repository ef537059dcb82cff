// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/anime-saver/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves a user record and its saved list.
type UserService interface {
	// GetUser returns the user with SavedList filled in.
	GetUser(ctx context.Context, userID string) (models.User, error)
	GetSavedList(ctx context.Context, userID string) ([]models.SavedAnime, error)

	AddAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error
	RemoveAnime(ctx context.Context, userID string, req models.RemoveAnimeRequest) error
	UpdateAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type ShareService interface {
	// ShareList stores a snapshot of the list and returns its public link.
	ShareList(ctx context.Context, req models.ShareListRequest) (string, error)
	GetSharedList(ctx context.Context, linkID string) (models.SharedList, error)

	// PurgeExpired deletes links older than the configured TTL and returns
	// how many were removed. A zero TTL keeps links forever.
	PurgeExpired(ctx context.Context) (int64, error)
}

// CatalogService proxies the MyAnimeList catalogue.
type CatalogService interface {
	Search(ctx context.Context, query string) ([]models.Anime, error)
	Get(ctx context.Context, animeID string) (models.Anime, error)
	Top(ctx context.Context) ([]models.Anime, error)
	Seasonal(ctx context.Context, req models.SeasonalRequest) ([]models.Anime, error)
}

type AdminService interface {
	// AdminData returns the admin payload if userID belongs to an admin.
	AdminData(ctx context.Context, userID string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
