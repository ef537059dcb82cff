// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/anime-saver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with CreatedAt populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks a user up by e-mail, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID looks a user up by id. SavedList is not loaded.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// SavedAnimeRepository persists the saved-anime entries of users.
type SavedAnimeRepository interface {
	// Add inserts the entry; an existing entry is left untouched.
	Add(ctx context.Context, userID string, anime models.SavedAnime) error
	// Remove deletes the entry. Removing a missing entry is not an error.
	Remove(ctx context.Context, userID, animeID string) error
	// Update sets the watched flag of an existing entry.
	Update(ctx context.Context, userID string, anime models.SavedAnime) error
	// List returns the entries in the order they were added.
	List(ctx context.Context, userID string) ([]models.SavedAnime, error)
}

// SharedListRepository persists shared list snapshots.
type SharedListRepository interface {
	Create(ctx context.Context, list models.SharedList) error
	Get(ctx context.Context, linkID string) (models.SharedList, error)
	// DeleteOlderThan removes links created before the given moment and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
