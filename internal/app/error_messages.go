// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// anime-saver server handlers and the terminal client.
//
// The server writes the Msg* strings into JSON response bodies; the client
// matches on some of them and shows others to the user as alerts. Keeping
// them in one place keeps the wording identical on both sides.
package app

// Response bodies of the user-service.
const (
	MsgNoJSONData            = "No JSON data provided"
	MsgMissingRequiredFields = "Missing required fields"
	MsgInvalidDataProvided   = "Invalid data provided"
	MsgUserRegistered        = "User registered successfully!"
	MsgEmailAlreadyExists    = "User with this email already exists!"

	MsgLoginSuccessful        = "Login successful!"
	MsgInvalidEmailOrPassword = "Invalid email or password!"

	MsgUserNotFound       = "User not found!"
	MsgAnimeAdded         = "Anime added to saved list!"
	MsgAnimeRemoved       = "Anime removed from saved list!"
	MsgAnimeUpdated       = "Anime updated!"
	MsgSavedAnimeNotFound = "Anime is not in the saved list!"

	MsgLinkNotFound = "Link not found"

	MsgNoQueryParameter = "No query parameter provided"
	MsgInvalidAnimeID   = "Invalid anime id"
	MsgInvalidSeason    = "Invalid year or season"
	MsgAnimeNotFound    = "Anime not found"

	MsgAdminAccessRequired = "Admin access required!"
	MsgAdminData           = "This is protected data for admins only!"

	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"
	MsgInternalServerError     = "Internal server error"
)

// Alerts shown by the terminal client.
const (
	MsgLoginRequired     = "Please log in first."
	MsgUpdateFailed      = "Could not update the anime. Please try again."
	MsgShareFailed       = "Could not create a share link."
	MsgCatalogFailed     = "The anime catalogue is unavailable right now."
	MsgSharedListMissing = "This shared list does not exist."
)
