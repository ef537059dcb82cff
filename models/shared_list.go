// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SharedList is a read-only snapshot of a saved list published under an
// opaque link identifier.
type SharedList struct {
	// LinkID is the opaque identifier that resolves to this list.
	LinkID string `json:"-"`

	// UserID is the owner of the shared list.
	UserID string `json:"userId"`

	// AnimeList is the snapshot of the owner's saved list.
	AnimeList []SavedAnime `json:"animeList"`

	// CreatedAt is used to expire old links.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// TableName returns the name of the database table
// associated with the SharedList model.
func (s SharedList) TableName() string {
	return "shared_lists"
}
