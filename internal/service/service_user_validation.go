// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
)

// UserValidationService checks request bodies before they reach the wrapped
// UserService. Reads pass straight through.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) GetSavedList(ctx context.Context, userID string) ([]models.SavedAnime, error) {
	return v.inner.GetSavedList(ctx, userID)
}

func (v *UserValidationService) AddAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during validation before saving anime: %w", err)
	}

	return v.inner.AddAnime(ctx, userID, req)
}

func (v *UserValidationService) RemoveAnime(ctx context.Context, userID string, req models.RemoveAnimeRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during validation before removing anime: %w", err)
	}

	return v.inner.RemoveAnime(ctx, userID, req)
}

func (v *UserValidationService) UpdateAnime(ctx context.Context, userID string, req models.SaveAnimeRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during validation before updating anime: %w", err)
	}

	return v.inner.UpdateAnime(ctx, userID, req)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
