// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigratePostgres(db), errNilDB)
	assert.ErrorIs(t, MigrateSQLite(db), errNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = migrate(db, "oracle-ish", "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialect")
}

func TestEmbeddedMigrations(t *testing.T) {
	postgres, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	assert.Len(t, postgres, 3)

	sqlite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)
	assert.Len(t, sqlite, 1)
}

// настоящая sqlite-база во временной директории
func TestMigrateSQLite_CreatesKVTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(db))
	// повторный запуск ничего не ломает
	require.NoError(t, MigrateSQLite(db))

	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES ('userId', 'abc')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv WHERE key = 'userId'`).Scan(&value))
	assert.Equal(t, "abc", value)
}
