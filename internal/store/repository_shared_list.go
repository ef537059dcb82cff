// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/jackc/pgerrcode"
)

// sharedListRepository stores shared list snapshots. The anime list is kept
// as a JSONB document since it is never queried by its content.
type sharedListRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSharedListRepository(db *DB, logger *logger.Logger) SharedListRepository {
	logger.Debug().Msg("creating shared list repository")
	return &sharedListRepository{
		db:     db,
		logger: logger,
	}
}

func (s *sharedListRepository) Create(ctx context.Context, list models.SharedList) error {
	log := logger.FromContext(ctx)

	if list.AnimeList == nil {
		list.AnimeList = []models.SavedAnime{}
	}
	animeList, err := json.Marshal(list.AnimeList)
	if err != nil {
		return fmt.Errorf("error encoding anime list: %w", err)
	}

	query, args, err := buildCreateSharedListQuery(list, animeList)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sharedListRepository.Create").Str("link_id", list.LinkID).Msg("error saving shared list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sharedListRepository) Get(ctx context.Context, linkID string) (models.SharedList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSharedListQuery(linkID)
	if err != nil {
		return models.SharedList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		list      models.SharedList
		animeList []byte
	)
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).
			Scan(&list.LinkID, &list.UserID, &animeList, &list.CreatedAt)
	})

	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.SharedList{}, ErrSharedListNotFound
	default:
		log.Err(err).Str("func", "*sharedListRepository.Get").Str("link_id", linkID).Msg("error querying shared list")
		return models.SharedList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(animeList, &list.AnimeList); err != nil {
		return models.SharedList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return list, nil
}

func (s *sharedListRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildDeleteSharedListsQuery(before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}
