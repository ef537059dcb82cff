// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/mock"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockSavedAnimeRepository) {
	users := mock.NewMockUserRepository(ctrl)
	saved := mock.NewMockSavedAnimeRepository(ctrl)
	return NewUserService(users, saved, logger.Nop()), users, saved
}

func TestUserService_GetUser_FillsSavedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, saved := newTestUserSvc(ctrl)
	ctx := context.Background()

	list := []models.SavedAnime{{AnimeID: "21", Watched: true}}
	users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1", Name: "Alice"}, nil)
	saved.EXPECT().List(ctx, "u1").Return(list, nil)

	user, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, list, user.SavedList)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_GetSavedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, saved := newTestUserSvc(ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil)
	saved.EXPECT().List(gomock.Any(), "u1").Return([]models.SavedAnime{}, nil)

	list, err := svc.GetSavedList(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUserService_AddAnime(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saved := newTestUserSvc(ctrl)

	saved.EXPECT().Add(gomock.Any(), "u1", models.SavedAnime{AnimeID: "21", Watched: false}).Return(nil)
	saved.EXPECT().Add(gomock.Any(), "ghost", gomock.Any()).Return(store.ErrUserNotFound)

	require.NoError(t, svc.AddAnime(context.Background(), "u1", models.SaveAnimeRequest{AnimeID: "21"}))
	assert.ErrorIs(t, svc.AddAnime(context.Background(), "ghost", models.SaveAnimeRequest{AnimeID: "21"}), store.ErrUserNotFound)
}

func TestUserService_RemoveAnime(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, saved := newTestUserSvc(ctrl)

	gomock.InOrder(
		users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil),
		saved.EXPECT().Remove(gomock.Any(), "u1", "21").Return(nil),
	)

	require.NoError(t, svc.RemoveAnime(context.Background(), "u1", models.RemoveAnimeRequest{AnimeID: "21"}))
}

func TestUserService_RemoveAnime_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(ctrl)

	// до удаления дело не доходит
	users.EXPECT().FindUserByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	err := svc.RemoveAnime(context.Background(), "ghost", models.RemoveAnimeRequest{AnimeID: "21"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateAnime(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, saved := newTestUserSvc(ctrl)

	saved.EXPECT().Update(gomock.Any(), "u1", models.SavedAnime{AnimeID: "21", Watched: true}).Return(nil)
	saved.EXPECT().Update(gomock.Any(), "u1", models.SavedAnime{AnimeID: "99", Watched: true}).Return(store.ErrSavedAnimeNotFound)

	require.NoError(t, svc.UpdateAnime(context.Background(), "u1", models.SaveAnimeRequest{AnimeID: "21", Watched: true}))

	err := svc.UpdateAnime(context.Background(), "u1", models.SaveAnimeRequest{AnimeID: "99", Watched: true})
	assert.True(t, errors.Is(err, store.ErrSavedAnimeNotFound))
}
