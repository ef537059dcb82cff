// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	UserName     string `json:"userName" validate:"required,max=64"`
	UserEmail    string `json:"userEmail" validate:"required,email,max=254"`
	UserPassword string `json:"userPassword" validate:"required,min=6,max=72"`
	IsAdmin      bool   `json:"isAdmin"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UserEmail    string `json:"userEmail" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
}

// SaveAnimeRequest is the body of the add_anime and update_anime endpoints.
type SaveAnimeRequest struct {
	AnimeID string `json:"anime_id" validate:"required,max=64"`
	Watched bool   `json:"watched"`
}

// RemoveAnimeRequest is the body of DELETE /user/{id}/remove_anime.
type RemoveAnimeRequest struct {
	AnimeID string `json:"anime_id" validate:"required,max=64"`
}

// ShareListRequest is the body of POST /share-list.
type ShareListRequest struct {
	UserID    string       `json:"userId" validate:"required"`
	AnimeList []SavedAnime `json:"animeList" validate:"dive"`
}

// UserIDRequest addresses a single user. Used by the gRPC API.
type UserIDRequest struct {
	ID string `json:"id"`
}

// SeasonalRequest is the query of GET /seasonal-anime.
type SeasonalRequest struct {
	Year   int    `validate:"min=1917,max=2100"`
	Season Season `validate:"season"`
}
