// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/go-resty/resty/v2"
)

// malClientIDHeader authenticates public (non-user) MyAnimeList requests.
const malClientIDHeader = "X-MAL-CLIENT-ID"

// animeFields is the field selector sent with every catalogue query.
const animeFields = "id,title,main_picture,synopsis,mean,num_episodes,start_date,end_date,genres,status"

// malPage is the paged envelope of MyAnimeList list endpoints:
// {"data":[{"node":{...}}, ...], "paging":{...}}.
type malPage struct {
	Data []struct {
		Node models.Anime `json:"node"`
	} `json:"data"`
}

func (p malPage) nodes() []models.Anime {
	animeList := make([]models.Anime, 0, len(p.Data))
	for _, item := range p.Data {
		animeList = append(animeList, item.Node)
	}
	return animeList
}

type malCatalogAdapter struct {
	client *utils.HTTPClient
	limit  int

	logger *logger.Logger
}

// NewMALCatalogAdapter constructs a [CatalogAdapter] backed by the
// MyAnimeList v2 REST API.
func NewMALCatalogAdapter(cfg config.Catalog, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader(malClientIDHeader, cfg.ClientID)

	return &malCatalogAdapter{client: client, limit: cfg.Limit, logger: logger}, nil
}

// Search implements [CatalogAdapter]. GET /anime?q=&limit=&fields=.
func (m *malCatalogAdapter) Search(ctx context.Context, query string) ([]models.Anime, error) {
	req := m.request(ctx).SetQueryParam("q", query)
	return m.page(req, "/anime")
}

// Get implements [CatalogAdapter]. GET /anime/{id}?fields=.
func (m *malCatalogAdapter) Get(ctx context.Context, animeID int64) (models.Anime, error) {
	var anime models.Anime

	resp, err := m.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(animeID, 10)).
		SetQueryParam("fields", animeFields).
		SetResult(&anime).
		Get("/anime/{id}")
	if err != nil {
		return models.Anime{}, fmt.Errorf("catalog get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Anime{}, err
	}

	return anime, nil
}

// Top implements [CatalogAdapter]. GET /anime/ranking?ranking_type=all.
func (m *malCatalogAdapter) Top(ctx context.Context) ([]models.Anime, error) {
	req := m.request(ctx).SetQueryParam("ranking_type", "all")
	return m.page(req, "/anime/ranking")
}

// Seasonal implements [CatalogAdapter]. GET /anime/season/{year}/{season}.
func (m *malCatalogAdapter) Seasonal(ctx context.Context, year int, season models.Season) ([]models.Anime, error) {
	req := m.request(ctx).
		SetPathParam("year", strconv.Itoa(year)).
		SetPathParam("season", string(season)).
		SetQueryParam("sort", "anime_score")
	return m.page(req, "/anime/season/{year}/{season}")
}

func (m *malCatalogAdapter) request(ctx context.Context) *resty.Request {
	return m.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(m.limit)).
		SetQueryParam("fields", animeFields)
}

func (m *malCatalogAdapter) page(req *resty.Request, path string) ([]models.Anime, error) {
	var page malPage

	resp, err := req.SetResult(&page).Get(path)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		m.logger.Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("catalog responded with error")
		return nil, err
	}

	return page.nodes(), nil
}
