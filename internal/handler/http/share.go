// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) shareList(w http.ResponseWriter, r *http.Request) {
	var req models.ShareListRequest
	if !decodeJSON(w, r, "*Handler.shareList", &req) {
		return
	}

	link, err := h.services.ShareService.ShareList(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.shareList", err)
		return
	}

	utils.WriteJSON(w, models.ShareListResponse{Link: link}, http.StatusOK)
}

func (h *Handler) getSharedList(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "link_id")

	list, err := h.services.ShareService.GetSharedList(r.Context(), linkID)
	if err != nil {
		writeError(w, r, "*Handler.getSharedList", err)
		return
	}

	if list.AnimeList == nil {
		list.AnimeList = []models.SavedAnime{}
	}
	utils.WriteJSON(w, list, http.StatusOK)
}
