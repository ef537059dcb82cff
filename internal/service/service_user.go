// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/models"
)

type userService struct {
	users      store.UserRepository
	savedAnime store.SavedAnimeRepository

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, savedAnime store.SavedAnimeRepository, logger *logger.Logger) UserService {
	return &userService{
		users:      users,
		savedAnime: savedAnime,
		logger:     logger,
	}
}

func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := u.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	user.SavedList, err = u.savedAnime.List(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting saved list: %w", err)
	}

	return user, nil
}

// GetSavedList reports store.ErrUserNotFound for an unknown user instead of
// an empty list.
func (u *userService) GetSavedList(ctx context.Context, userID string) ([]models.SavedAnime, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.SavedList, nil
}

func (u *userService) AddAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error {
	entry := models.SavedAnime{AnimeID: req.AnimeID, Watched: req.Watched}
	if err := u.savedAnime.Add(ctx, userID, entry); err != nil {
		return fmt.Errorf("error adding anime: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Str("anime_id", req.AnimeID).Msg("anime saved")
	return nil
}

func (u *userService) RemoveAnime(ctx context.Context, userID string, req models.RemoveAnimeRequest) error {
	// удаление отсутствующей записи не ошибка, но пользователь должен существовать
	if _, err := u.users.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("error getting user: %w", err)
	}

	if err := u.savedAnime.Remove(ctx, userID, req.AnimeID); err != nil {
		return fmt.Errorf("error removing anime: %w", err)
	}

	return nil
}

func (u *userService) UpdateAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error {
	entry := models.SavedAnime{AnimeID: req.AnimeID, Watched: req.Watched}
	if err := u.savedAnime.Update(ctx, userID, entry); err != nil {
		return fmt.Errorf("error updating anime: %w", err)
	}

	return nil
}
