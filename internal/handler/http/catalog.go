// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) searchAnime(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.CatalogService.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, "*Handler.searchAnime", err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getAnime(w http.ResponseWriter, r *http.Request) {
	anime, err := h.services.CatalogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getAnime", err)
		return
	}

	utils.WriteJSON(w, anime, http.StatusOK)
}

func (h *Handler) topAnime(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.CatalogService.Top(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.topAnime", err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// seasonalAnime defaults to the current season when year or season is
// omitted.
func (h *Handler) seasonalAnime(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := models.SeasonalRequest{Year: now.Year(), Season: models.SeasonOf(now.Month())}

	query := r.URL.Query()
	if year := query.Get("year"); year != "" {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidSeason}, http.StatusBadRequest)
			return
		}
		req.Year = parsed
	}
	if season := query.Get("season"); season != "" {
		req.Season = models.Season(season)
	}

	list, err := h.services.CatalogService.Seasonal(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.seasonalAnime", err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}
