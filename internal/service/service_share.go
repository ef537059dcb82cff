// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
)

// sharedListPath is the path of the public shared list view.
const sharedListPath = "/shared-list/"

type shareService struct {
	sharedLists store.SharedListRepository
	validator   validators.Validator
	ids         idGenerator

	publicURL string
	linkTTL   time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewShareService(sharedLists store.SharedListRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) ShareService {
	return &shareService{
		sharedLists: sharedLists,
		validator:   validator,
		ids:         utils.NewUUIDGenerator(),
		publicURL:   strings.TrimRight(cfg.PublicURL, "/"),
		linkTTL:     cfg.SharedLinkTTL,
		now:         time.Now,
		logger:      logger,
	}
}

// ShareList stores the list as sent by the caller. The owner is not looked
// up: a link is only a published snapshot.
func (s *shareService) ShareList(ctx context.Context, req models.ShareListRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during validation before sharing list: %w", err)
	}

	list := models.SharedList{
		LinkID:    s.ids.Generate(),
		UserID:    req.UserID,
		AnimeList: req.AnimeList,
	}
	if err := s.sharedLists.Create(ctx, list); err != nil {
		return "", fmt.Errorf("error saving shared list: %w", err)
	}

	logger.FromContext(ctx).Info().Str("link_id", list.LinkID).Str("user_id", list.UserID).Msg("list shared")

	return s.publicURL + sharedListPath + list.LinkID, nil
}

// GetSharedList resolves a link. A link older than the configured TTL is
// reported as missing even if the janitor has not purged it yet.
func (s *shareService) GetSharedList(ctx context.Context, linkID string) (models.SharedList, error) {
	list, err := s.sharedLists.Get(ctx, linkID)
	if err != nil {
		return models.SharedList{}, fmt.Errorf("error getting shared list: %w", err)
	}

	if s.expired(list) {
		logger.FromContext(ctx).Debug().Str("link_id", linkID).Time("created_at", list.CreatedAt).Msg("shared link expired")
		return models.SharedList{}, fmt.Errorf("error getting shared list: %w", store.ErrSharedListNotFound)
	}

	return list, nil
}

func (s *shareService) expired(list models.SharedList) bool {
	return s.linkTTL > 0 && list.CreatedAt.Before(s.now().Add(-s.linkTTL))
}

func (s *shareService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.linkTTL <= 0 {
		return 0, nil
	}

	deleted, err := s.sharedLists.DeleteOlderThan(ctx, s.now().Add(-s.linkTTL))
	if err != nil {
		return 0, fmt.Errorf("error purging shared lists: %w", err)
	}

	return deleted, nil
}
