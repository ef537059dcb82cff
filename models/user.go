// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the server-side account record. It owns the saved-anime list.
//
// JSON field names follow the wire format consumed by the clients, so the
// identifier is serialised as "_id" and the list as "savedList".
type User struct {
	// ID is the opaque user identifier (a UUID string). Clients persist it
	// locally and use it both as a login flag and as a path parameter.
	ID string `json:"_id"`

	// Name is the display name chosen at registration.
	Name string `json:"userName"`

	// Email is the unique login of the account.
	Email string `json:"userEmail"`

	// PasswordHash is the bcrypt hash of the password. Never serialised.
	PasswordHash string `json:"-"`

	// SavedList is the ordered collection of saved anime entries.
	// A nil value on the client side means the field was absent.
	SavedList []SavedAnime `json:"savedList"`

	// IsAdmin grants access to the admin endpoints.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
