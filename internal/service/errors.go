// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrAdminAccessRequired = errors.New("admin access required")

	ErrEmptyQuery         = errors.New("no query parameter provided")
	ErrInvalidAnimeID     = errors.New("invalid anime id")
	ErrAnimeNotFound      = errors.New("anime not found")
	ErrCatalogUnavailable = errors.New("catalogue request failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// client side
var (
	// ErrNotLoggedIn is returned by Authenticate when there is no stored
	// identifier or the server does not confirm it.
	ErrNotLoggedIn = errors.New("not logged in")
)
