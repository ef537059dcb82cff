// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchAnime(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.catalog.EXPECT().Search(gomock.Any(), "cowboy bebop").Return([]models.Anime{{ID: 1, Title: "Cowboy Bebop"}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/search_anime?query=cowboy+bebop", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Cowboy Bebop"}]`, rec.Body.String())
}

func TestSearchAnime_NoQuery(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.catalog.EXPECT().Search(gomock.Any(), "").Return(nil, service.ErrEmptyQuery)

	rec := doRequest(t, router, http.MethodGet, "/search_anime", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoQueryParameter, decodeBody(t, rec)["error"])
}

func TestSearchAnime_Upstream(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.catalog.EXPECT().Search(gomock.Any(), "x").
		Return(nil, fmt.Errorf("%w: %w", service.ErrCatalogUnavailable, adapter.ErrBadGateway))

	rec := doRequest(t, router, http.MethodGet, "/search_anime?query=x", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")
}

func TestGetAnime(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"bad id", service.ErrInvalidAnimeID, http.StatusBadRequest},
		{"unknown", service.ErrAnimeNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.catalog.EXPECT().Get(gomock.Any(), "21").Return(models.Anime{ID: 21}, tt.err)

			rec := doRequest(t, router, http.MethodGet, "/anime/21", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestTopAnime(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.catalog.EXPECT().Top(gomock.Any()).Return([]models.Anime{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/top-anime", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSeasonalAnime(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.catalog.EXPECT().Seasonal(gomock.Any(), models.SeasonalRequest{Year: 2024, Season: "fall"}).
		Return([]models.Anime{{ID: 7}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/seasonal-anime?year=2024&season=fall", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSeasonalAnime_DefaultsToCurrentSeason(t *testing.T) {
	router, mocks := newTestRouter(t)
	now := time.Now()

	mocks.catalog.EXPECT().Seasonal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.SeasonalRequest) ([]models.Anime, error) {
			assert.Equal(t, now.Year(), req.Year)
			assert.Equal(t, models.SeasonOf(now.Month()), req.Season)
			return []models.Anime{}, nil
		},
	)

	rec := doRequest(t, router, http.MethodGet, "/seasonal-anime", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSeasonalAnime_BadYear(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/seasonal-anime?year=soon", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidSeason, decodeBody(t, rec)["error"])
}
