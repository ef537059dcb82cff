// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/logger"
)

// decodeJSON reads the request body into dst. On failure it answers 400
// itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	message := app.MsgInvalidDataProvided
	if errors.Is(err, io.EOF) {
		message = app.MsgNoJSONData
	}

	logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
	writeMessage(w, message, http.StatusBadRequest)
	return false
}
