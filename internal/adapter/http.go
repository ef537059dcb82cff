// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. POST /register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. POST /login. The bearer token is taken
// from the Authorization response header and kept in memory only.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&loginResponse).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		h.SetToken(token)
	} else {
		h.logger.Warn().Err(err).Msg("login response carries no bearer token")
	}

	return loginResponse, nil
}

// GetUser implements [ServerAdapter]. GET /user/{id}. Only 200 carries a
// user record; any other success status is reported as [ErrUnexpectedStatus].
func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", userID).
		SetResult(&user).
		Get("/user/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if resp.StatusCode() != http.StatusOK {
		return models.User{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return user, nil
}

// AddAnime implements [ServerAdapter]. POST /user/{id}/add_anime.
func (h *httpServerAdapter) AddAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetPathParam("id", userID).
		SetBody(req).
		Post("/user/{id}/add_anime")
	if err != nil {
		return fmt.Errorf("add anime request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveAnime implements [ServerAdapter]. DELETE /user/{id}/remove_anime.
func (h *httpServerAdapter) RemoveAnime(ctx context.Context, userID string, req models.RemoveAnimeRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetPathParam("id", userID).
		SetBody(req).
		Delete("/user/{id}/remove_anime")
	if err != nil {
		return fmt.Errorf("remove anime request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateAnime implements [ServerAdapter]. PUT /user/{id}/update_anime.
func (h *httpServerAdapter) UpdateAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetPathParam("id", userID).
		SetBody(req).
		Put("/user/{id}/update_anime")
	if err != nil {
		return fmt.Errorf("update anime request: %w", err)
	}

	return mapHTTPError(resp)
}

// ShareList implements [ServerAdapter]. POST /share-list.
func (h *httpServerAdapter) ShareList(ctx context.Context, req models.ShareListRequest) (string, error) {
	var shareResponse models.ShareListResponse

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		SetResult(&shareResponse).
		Post("/share-list")
	if err != nil {
		return "", fmt.Errorf("share list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return shareResponse.Link, nil
}

// GetSharedList implements [ServerAdapter]. GET /shared-list/{link_id}.
func (h *httpServerAdapter) GetSharedList(ctx context.Context, linkID string) (models.SharedList, error) {
	var sharedList models.SharedList

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("link_id", linkID).
		SetResult(&sharedList).
		Get("/shared-list/{link_id}")
	if err != nil {
		return models.SharedList{}, fmt.Errorf("get shared list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SharedList{}, err
	}

	sharedList.LinkID = linkID
	return sharedList, nil
}

// SearchAnime implements [ServerAdapter]. GET /search_anime?query=.
func (h *httpServerAdapter) SearchAnime(ctx context.Context, query string) ([]models.Anime, error) {
	return h.animeList(ctx, h.client.R().SetQueryParam("query", query), "/search_anime")
}

// GetAnime implements [ServerAdapter]. GET /anime/{id}.
func (h *httpServerAdapter) GetAnime(ctx context.Context, animeID string) (models.Anime, error) {
	var anime models.Anime

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", animeID).
		SetResult(&anime).
		Get("/anime/{id}")
	if err != nil {
		return models.Anime{}, fmt.Errorf("get anime request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Anime{}, err
	}

	return anime, nil
}

// TopAnime implements [ServerAdapter]. GET /top-anime.
func (h *httpServerAdapter) TopAnime(ctx context.Context) ([]models.Anime, error) {
	return h.animeList(ctx, h.client.R(), "/top-anime")
}

// SeasonalAnime implements [ServerAdapter]. GET /seasonal-anime?year=&season=.
func (h *httpServerAdapter) SeasonalAnime(ctx context.Context, year int, season models.Season) ([]models.Anime, error) {
	req := h.client.R().SetQueryParams(map[string]string{
		"year":   strconv.Itoa(year),
		"season": string(season),
	})
	return h.animeList(ctx, req, "/seasonal-anime")
}

// AdminData implements [ServerAdapter]. GET /admin/data with the bearer token.
func (h *httpServerAdapter) AdminData(ctx context.Context) (string, error) {
	var adminResponse models.AdminDataResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&adminResponse).
		Get("/admin/data")
	if err != nil {
		return "", fmt.Errorf("admin data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return adminResponse.Data, nil
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) animeList(ctx context.Context, req *resty.Request, path string) ([]models.Anime, error) {
	var animeList []models.Anime

	resp, err := req.
		SetContext(ctx).
		SetResult(&animeList).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("anime list request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if animeList == nil {
		animeList = []models.Anime{}
	}
	return animeList, nil
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
