// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic {"message": ...} body used by the
// user endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the {"error": ...} body used by the catalogue and share
// endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by POST /login. The bearer token travels in the
// Authorization header, not in the body.
type LoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
	ID      string `json:"_id"`
}

// ShareListResponse carries the public link of a freshly shared list.
type ShareListResponse struct {
	Link string `json:"link"`
}

// SavedListResponse wraps a saved list. Used by the gRPC API.
type SavedListResponse struct {
	SavedList []SavedAnime `json:"savedList"`
}

// AdminDataResponse is the body of GET /admin/data.
type AdminDataResponse struct {
	Data string `json:"data"`
}
