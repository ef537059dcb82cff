// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgMissingRequiredFields:
			return validators.ErrMissingRequiredFields
		case app.MsgInvalidDataProvided, app.MsgNoJSONData:
			return ErrInvalidDataProvided
		case app.MsgNoQueryParameter:
			return ErrEmptyQuery
		case app.MsgInvalidAnimeID:
			return ErrInvalidAnimeID
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailOrPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAdminAccessRequired

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		case app.MsgSavedAnimeNotFound:
			return store.ErrSavedAnimeNotFound
		case app.MsgLinkNotFound:
			return store.ErrSharedListNotFound
		case app.MsgAnimeNotFound:
			return ErrAnimeNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return store.ErrEmailAlreadyExists
		}
	}

	return err
}

// extractMessage pulls the "message" or "error" field out of an error of the
// form "not found: {\"message\":\"User not found!\"}". A body that is not
// JSON is returned as is.
func extractMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal([]byte(msg), &body) != nil {
		return msg
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
