// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
)

// errorReply is what the client sees for a service error.
type errorReply struct {
	status  int
	message string

	// asError puts the message under "error" instead of "message".
	asError bool
}

// errorReplies is checked in order: service errors often wrap a validation
// or store error and the outermost one decides.
var errorReplies = []struct {
	target error
	reply  errorReply
}{
	{service.ErrWrongPassword, errorReply{http.StatusUnauthorized, app.MsgInvalidEmailOrPassword, false}},
	{service.ErrTokenIsExpiredOrInvalid, errorReply{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, false}},
	{service.ErrAdminAccessRequired, errorReply{http.StatusForbidden, app.MsgAdminAccessRequired, false}},
	{service.ErrEmptyQuery, errorReply{http.StatusBadRequest, app.MsgNoQueryParameter, true}},
	{service.ErrInvalidAnimeID, errorReply{http.StatusBadRequest, app.MsgInvalidAnimeID, true}},
	{service.ErrAnimeNotFound, errorReply{http.StatusNotFound, app.MsgAnimeNotFound, true}},
	{service.ErrCatalogUnavailable, errorReply{http.StatusInternalServerError, app.MsgInternalServerError, true}},
	{service.ErrInvalidDataProvided, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided, false}},

	{validators.ErrMissingRequiredFields, errorReply{http.StatusBadRequest, app.MsgMissingRequiredFields, false}},
	{validators.ErrInvalidRequest, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided, false}},
	{validators.ErrUnsupportedType, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided, false}},

	{store.ErrEmailAlreadyExists, errorReply{http.StatusConflict, app.MsgEmailAlreadyExists, false}},
	{store.ErrUserNotFound, errorReply{http.StatusNotFound, app.MsgUserNotFound, false}},
	{store.ErrSavedAnimeNotFound, errorReply{http.StatusNotFound, app.MsgSavedAnimeNotFound, false}},
	{store.ErrSharedListNotFound, errorReply{http.StatusNotFound, app.MsgLinkNotFound, true}},
}

var internalErrorReply = errorReply{http.StatusInternalServerError, app.MsgInternalServerError, false}

func replyFromError(err error) errorReply {
	for _, candidate := range errorReplies {
		if errors.Is(err, candidate.target) {
			return candidate.reply
		}
	}
	return internalErrorReply
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

// writeError logs err and answers with the mapped status and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	reply := replyFromError(err)

	event := logger.FromRequest(r).Warn()
	if reply.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", reply.status).Msg(reply.message)

	writeReply(w, reply)
}

func writeReply(w http.ResponseWriter, reply errorReply) {
	if reply.asError {
		utils.WriteJSON(w, models.ErrorResponse{Error: reply.message}, reply.status)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: reply.message}, reply.status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
