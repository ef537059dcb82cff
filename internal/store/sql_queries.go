// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/anime-saver/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders postgres queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"user_id", "user_name", "user_email", "password_hash", "is_admin", "created_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(models.User{}.TableName()).
		Columns("user_id", "user_name", "user_email", "password_hash", "is_admin").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.IsAdmin).
		Suffix("RETURNING created_at").
		ToSql()
}

// buildFindUserByEmailQuery matches the email case-insensitively.
func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Expr("LOWER(user_email) = LOWER(?)", email)).
		ToSql()
}

func buildFindUserByIDQuery(userID string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildAddAnimeQuery builds an idempotent insert: an entry that is already
// saved keeps its watched flag and position.
func buildAddAnimeQuery(userID string, anime models.SavedAnime) (string, []any, error) {
	return psql.
		Insert(models.SavedAnime{}.TableName()).
		Columns("user_id", "anime_id", "watched").
		Values(userID, anime.AnimeID, anime.Watched).
		Suffix("ON CONFLICT (user_id, anime_id) DO NOTHING").
		ToSql()
}

func buildRemoveAnimeQuery(userID, animeID string) (string, []any, error) {
	return psql.
		Delete(models.SavedAnime{}.TableName()).
		Where(sq.Eq{"user_id": userID, "anime_id": animeID}).
		ToSql()
}

func buildUpdateAnimeQuery(userID string, anime models.SavedAnime) (string, []any, error) {
	return psql.
		Update(models.SavedAnime{}.TableName()).
		Set("watched", anime.Watched).
		Where(sq.Eq{"user_id": userID, "anime_id": anime.AnimeID}).
		ToSql()
}

func buildListSavedAnimeQuery(userID string) (string, []any, error) {
	return psql.
		Select("anime_id", "watched", "added_at").
		From(models.SavedAnime{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("added_at", "anime_id").
		ToSql()
}

func buildCreateSharedListQuery(list models.SharedList, animeList []byte) (string, []any, error) {
	return psql.
		Insert(models.SharedList{}.TableName()).
		Columns("link_id", "user_id", "anime_list").
		Values(list.LinkID, list.UserID, string(animeList)).
		ToSql()
}

func buildGetSharedListQuery(linkID string) (string, []any, error) {
	return psql.
		Select("link_id", "user_id", "anime_list", "created_at").
		From(models.SharedList{}.TableName()).
		Where(sq.Eq{"link_id": linkID}).
		ToSql()
}

func buildDeleteSharedListsQuery(before time.Time) (string, []any, error) {
	return psql.
		Delete(models.SharedList{}.TableName()).
		Where(sq.Lt{"created_at": before}).
		ToSql()
}

// kv queries use sqlite's ? placeholders.

const kvTable = "kv"

func buildGetValueQuery(key string) (string, []any, error) {
	return sq.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
}

func buildSetValueQuery(key, value string) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return sq.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
}
