// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// настоящий sqlite-файл: проверяем миграцию и весь цикл Set/Get/Remove
func TestClientStorages_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	sessions := storages.SessionStore

	_, err = sessions.Get(ctx, "userId")
	assert.ErrorIs(t, err, ErrSessionValueNotFound)

	require.NoError(t, sessions.Set(ctx, "userId", "u1"))
	require.NoError(t, sessions.Set(ctx, "userId", "u2"))

	got, err := sessions.Get(ctx, "userId")
	require.NoError(t, err)
	assert.Equal(t, "u2", got)

	require.NoError(t, sessions.Remove(ctx, "userId"))
	require.NoError(t, sessions.Remove(ctx, "userId"))

	_, err = sessions.Get(ctx, "userId")
	assert.ErrorIs(t, err, ErrSessionValueNotFound)
}

func TestClientStorages_ReopenKeepsValue(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{Path: filepath.Join(t.TempDir(), "session.db")}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SessionStore.Set(ctx, "userId", "persisted"))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.SessionStore.Get(ctx, "userId")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestLocalSessionStore_EmptyValueIsAbsent(t *testing.T) {
	db, mock := newTestDB(t)
	sessions := NewLocalSessionStore(&DB{DB: db}, logger.Nop())

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("userId").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(""))

	_, err := sessions.Get(context.Background(), "userId")
	assert.ErrorIs(t, err, ErrSessionValueNotFound)
}

func TestLocalSessionStore_Errors(t *testing.T) {
	db, mock := newTestDB(t)
	sessions := NewLocalSessionStore(&DB{DB: db}, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv").WillReturnError(errors.New("locked"))
	mock.ExpectExec("INSERT INTO kv").WillReturnError(errors.New("locked"))
	mock.ExpectExec("DELETE FROM kv").WillReturnError(errors.New("locked"))

	_, err := sessions.Get(ctx, "userId")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, sessions.Set(ctx, "userId", "x"), ErrExecutingStatement)
	assert.ErrorIs(t, sessions.Remove(ctx, "userId"), ErrExecutingStatement)
}
