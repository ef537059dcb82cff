// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/logger"
)

// localSessionStore is the SQLite implementation of [SessionStore] over the
// kv(key, value) table.
type localSessionStore struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &localSessionStore{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value sql.NullString
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionValueNotFound
	}
	if err != nil {
		l.logger.Err(err).Str("func", "localSessionStore.Get").Str("key", key).Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !value.Valid || value.String == "" {
		return "", ErrSessionValueNotFound
	}

	return value.String, nil
}

func (l *localSessionStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).Str("func", "localSessionStore.Set").Str("key", key).Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionStore) Remove(ctx context.Context, key string) error {
	query, args, err := buildRemoveValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).Str("func", "localSessionStore.Remove").Str("key", key).Msg("failed to remove value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
