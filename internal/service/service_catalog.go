// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
)

// catalogService proxies MyAnimeList. Titles and synopses come from a third
// party and are stripped of markup before they are passed on.
type catalogService struct {
	catalog   adapter.CatalogAdapter
	validator validators.Validator
	sanitizer validators.Sanitizer

	logger *logger.Logger
}

func NewCatalogService(catalog adapter.CatalogAdapter, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog:   catalog,
		validator: validator,
		sanitizer: validators.NewSanitizer(),
		logger:    logger,
	}
}

func (c *catalogService) Search(ctx context.Context, query string) ([]models.Anime, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	list, err := c.catalog.Search(ctx, query)
	if err != nil {
		return nil, c.upstreamError(ctx, "Search", err)
	}

	return c.cleanList(list), nil
}

func (c *catalogService) Get(ctx context.Context, animeID string) (models.Anime, error) {
	id, err := strconv.ParseInt(animeID, 10, 64)
	if err != nil || id <= 0 {
		return models.Anime{}, ErrInvalidAnimeID
	}

	anime, err := c.catalog.Get(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Anime{}, ErrAnimeNotFound
	}
	if err != nil {
		return models.Anime{}, c.upstreamError(ctx, "Get", err)
	}

	return c.clean(anime), nil
}

func (c *catalogService) Top(ctx context.Context) ([]models.Anime, error) {
	list, err := c.catalog.Top(ctx)
	if err != nil {
		return nil, c.upstreamError(ctx, "Top", err)
	}

	return c.cleanList(list), nil
}

func (c *catalogService) Seasonal(ctx context.Context, req models.SeasonalRequest) ([]models.Anime, error) {
	req.Season = models.Season(strings.ToLower(string(req.Season)))
	if err := c.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during validation of seasonal request: %w", err)
	}

	list, err := c.catalog.Seasonal(ctx, req.Year, req.Season)
	if err != nil {
		return nil, c.upstreamError(ctx, "Seasonal", err)
	}

	return c.cleanList(list), nil
}

func (c *catalogService) upstreamError(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", "*catalogService."+op).Msg("catalogue request failed")
	return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
}

func (c *catalogService) clean(anime models.Anime) models.Anime {
	anime.Title = c.sanitizer.Text(anime.Title)
	anime.Synopsis = c.sanitizer.Text(anime.Synopsis)
	return anime
}

func (c *catalogService) cleanList(list []models.Anime) []models.Anime {
	cleaned := make([]models.Anime, 0, len(list))
	for _, anime := range list {
		cleaned = append(cleaned, c.clean(anime))
	}
	return cleaned
}
