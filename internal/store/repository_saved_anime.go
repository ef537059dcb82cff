// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/jackc/pgerrcode"
)

// savedAnimeRepository is the PostgreSQL implementation of
// [SavedAnimeRepository]. Every mutation is a single statement, so concurrent
// calls for the same user serialise in the database.
type savedAnimeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSavedAnimeRepository(db *DB, logger *logger.Logger) SavedAnimeRepository {
	logger.Debug().Msg("creating saved anime repository")
	return &savedAnimeRepository{
		db:     db,
		logger: logger,
	}
}

// Add inserts anime for userID. A foreign key violation means the user does
// not exist and is reported as [ErrUserNotFound].
func (s *savedAnimeRepository) Add(ctx context.Context, userID string, anime models.SavedAnime) error {
	query, args, err := buildAddAnimeQuery(userID, anime)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = s.exec(ctx, "*savedAnimeRepository.Add", query, args)
	return err
}

func (s *savedAnimeRepository) Remove(ctx context.Context, userID, animeID string) error {
	query, args, err := buildRemoveAnimeQuery(userID, animeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = s.exec(ctx, "*savedAnimeRepository.Remove", query, args)
	return err
}

// Update returns [ErrSavedAnimeNotFound] when no row was touched.
func (s *savedAnimeRepository) Update(ctx context.Context, userID string, anime models.SavedAnime) error {
	query, args, err := buildUpdateAnimeQuery(userID, anime)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := s.exec(ctx, "*savedAnimeRepository.Update", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSavedAnimeNotFound
	}

	return nil
}

func (s *savedAnimeRepository) List(ctx context.Context, userID string) ([]models.SavedAnime, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSavedAnimeQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = s.db.withRetry(ctx, func() error {
		var qErr error
		rows, qErr = s.db.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "*savedAnimeRepository.List").Str("user_id", userID).Msg("error querying saved list")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	savedList := make([]models.SavedAnime, 0)
	for rows.Next() {
		var anime models.SavedAnime
		if err = rows.Scan(&anime.AnimeID, &anime.Watched, &anime.AddedAt); err != nil {
			log.Err(err).Str("func", "*savedAnimeRepository.List").Msg("error scanning saved anime")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		savedList = append(savedList, anime)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return savedList, nil
}

func (s *savedAnimeRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	var affected int64
	err := s.db.withRetry(ctx, func() error {
		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
			return 0, ErrUserNotFound
		default:
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return affected, nil
}
