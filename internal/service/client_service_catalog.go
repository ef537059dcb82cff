// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/models"
)

type clientCatalogService struct {
	server  adapter.ServerAdapter
	alerter Alerter

	logger *logger.Logger
}

func NewClientCatalogService(server adapter.ServerAdapter, alerter Alerter, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		server:  server,
		alerter: alerter,
		logger:  logger,
	}
}

// SearchAnime returns an empty result for a blank query without asking the
// server.
func (c *clientCatalogService) SearchAnime(ctx context.Context, query string) []models.Anime {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Anime{}
	}

	list, err := c.server.SearchAnime(ctx, query)
	return c.list(ctx, "SearchAnime", list, err)
}

func (c *clientCatalogService) GetAnime(ctx context.Context, animeID string) (models.Anime, bool) {
	anime, err := c.server.GetAnime(ctx, animeID)
	if err != nil {
		c.fail(ctx, "GetAnime", err)
		return models.Anime{}, false
	}
	return anime, true
}

func (c *clientCatalogService) TopAnime(ctx context.Context) []models.Anime {
	list, err := c.server.TopAnime(ctx)
	return c.list(ctx, "TopAnime", list, err)
}

func (c *clientCatalogService) SeasonalAnime(ctx context.Context, year int, season models.Season) []models.Anime {
	list, err := c.server.SeasonalAnime(ctx, year, season)
	return c.list(ctx, "SeasonalAnime", list, err)
}

func (c *clientCatalogService) GetSharedList(ctx context.Context, linkID string) (models.SharedList, bool) {
	list, err := c.server.GetSharedList(ctx, linkID)
	if err == nil {
		if list.AnimeList == nil {
			list.AnimeList = []models.SavedAnime{}
		}
		return list, true
	}

	err = mapAdapterError(err)
	c.logger.Err(err).Str("link_id", linkID).Msg("error getting shared list")
	if errors.Is(err, store.ErrSharedListNotFound) {
		c.alerter.Alert(ctx, app.MsgSharedListMissing)
	} else {
		c.alerter.Alert(ctx, app.MsgCatalogFailed)
	}
	return models.SharedList{}, false
}

func (c *clientCatalogService) ServerVersion(ctx context.Context) string {
	version, err := c.server.Version(ctx)
	if err != nil {
		c.logger.Err(err).Msg("error getting server version")
		return ""
	}
	return version
}

func (c *clientCatalogService) list(ctx context.Context, op string, list []models.Anime, err error) []models.Anime {
	if err != nil {
		c.fail(ctx, op, err)
		return []models.Anime{}
	}
	if list == nil {
		return []models.Anime{}
	}
	return list
}

func (c *clientCatalogService) fail(ctx context.Context, op string, err error) {
	c.logger.Err(mapAdapterError(err)).Str("func", "*clientCatalogService."+op).Msg("catalogue request failed")
	c.alerter.Alert(ctx, app.MsgCatalogFailed)
}
