// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/go-chi/chi/v5"
)

// userIDParam returns the {id} path parameter. Anything that is not a UUID
// cannot name a user and is answered with 404 right away.
func userIDParam(w http.ResponseWriter, r *http.Request, funcName string) (string, bool) {
	userID := chi.URLParam(r, "id")
	if !utils.IsUUID(userID) {
		writeError(w, r, funcName, store.ErrUserNotFound)
		return "", false
	}
	return userID, true
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r, "*Handler.getUser")
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) addAnime(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r, "*Handler.addAnime")
	if !ok {
		return
	}

	var req models.SaveAnimeRequest
	if !decodeJSON(w, r, "*Handler.addAnime", &req) {
		return
	}

	if err := h.services.UserService.AddAnime(r.Context(), userID, req); err != nil {
		writeError(w, r, "*Handler.addAnime", err)
		return
	}

	writeMessage(w, app.MsgAnimeAdded, http.StatusOK)
}

func (h *Handler) removeAnime(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r, "*Handler.removeAnime")
	if !ok {
		return
	}

	var req models.RemoveAnimeRequest
	if !decodeJSON(w, r, "*Handler.removeAnime", &req) {
		return
	}

	if err := h.services.UserService.RemoveAnime(r.Context(), userID, req); err != nil {
		writeError(w, r, "*Handler.removeAnime", err)
		return
	}

	writeMessage(w, app.MsgAnimeRemoved, http.StatusOK)
}

func (h *Handler) updateAnime(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r, "*Handler.updateAnime")
	if !ok {
		return
	}

	var req models.SaveAnimeRequest
	if !decodeJSON(w, r, "*Handler.updateAnime", &req) {
		return
	}

	if err := h.services.UserService.UpdateAnime(r.Context(), userID, req); err != nil {
		writeError(w, r, "*Handler.updateAnime", err)
		return
	}

	writeMessage(w, app.MsgAnimeUpdated, http.StatusOK)
}
