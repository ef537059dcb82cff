// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/mock"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerUserService struct {
	calls []string
}

func (m *mockInnerUserService) GetUser(context.Context, string) (models.User, error) {
	m.calls = append(m.calls, "GetUser")
	return models.User{}, nil
}

func (m *mockInnerUserService) GetSavedList(context.Context, string) ([]models.SavedAnime, error) {
	m.calls = append(m.calls, "GetSavedList")
	return nil, nil
}

func (m *mockInnerUserService) AddAnime(context.Context, string, models.SaveAnimeRequest) error {
	m.calls = append(m.calls, "AddAnime")
	return nil
}

func (m *mockInnerUserService) RemoveAnime(context.Context, string, models.RemoveAnimeRequest) error {
	m.calls = append(m.calls, "RemoveAnime")
	return nil
}

func (m *mockInnerUserService) UpdateAnime(context.Context, string, models.SaveAnimeRequest) error {
	m.calls = append(m.calls, "UpdateAnime")
	return nil
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestUserValidationService_RejectsInvalidBodies(t *testing.T) {
	inner := &mockInnerUserService{}
	svc := NewUserValidationService(validators.NewRequestValidator()).Wrap(inner)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddAnime(ctx, "u1", models.SaveAnimeRequest{}), validators.ErrMissingRequiredFields)
	assert.ErrorIs(t, svc.RemoveAnime(ctx, "u1", models.RemoveAnimeRequest{}), validators.ErrMissingRequiredFields)
	assert.ErrorIs(t, svc.UpdateAnime(ctx, "u1", models.SaveAnimeRequest{}), validators.ErrMissingRequiredFields)

	assert.Empty(t, inner.calls, "невалидный запрос не должен доходить до сервиса")
}

func TestUserValidationService_PassesValidBodies(t *testing.T) {
	inner := &mockInnerUserService{}
	svc := NewUserValidationService(validators.NewRequestValidator()).Wrap(inner)
	ctx := context.Background()

	require.NoError(t, svc.AddAnime(ctx, "u1", models.SaveAnimeRequest{AnimeID: "21"}))
	require.NoError(t, svc.RemoveAnime(ctx, "u1", models.RemoveAnimeRequest{AnimeID: "21"}))
	require.NoError(t, svc.UpdateAnime(ctx, "u1", models.SaveAnimeRequest{AnimeID: "21", Watched: true}))
	_, _ = svc.GetUser(ctx, "u1")
	_, _ = svc.GetSavedList(ctx, "u1")

	assert.Equal(t, []string{"AddAnime", "RemoveAnime", "UpdateAnime", "GetUser", "GetSavedList"}, inner.calls)
}

func TestUserValidationService_UsesInjectedValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mock.NewMockValidator(ctrl)
	inner := &mockInnerUserService{}
	svc := NewUserValidationService(validator).Wrap(inner)

	req := models.SaveAnimeRequest{AnimeID: "21"}
	validator.EXPECT().Validate(gomock.Any(), req).Return(validators.ErrInvalidRequest)

	err := svc.AddAnime(context.Background(), "u1", req)
	assert.ErrorIs(t, err, validators.ErrInvalidRequest)
	assert.Empty(t, inner.calls)
}
