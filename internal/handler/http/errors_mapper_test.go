// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", service.ErrWrongPassword, validators.ErrMissingRequiredFields), http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", validators.ErrMissingRequiredFields), http.StatusBadRequest},
		{service.ErrAdminAccessRequired, http.StatusForbidden},
		{store.ErrEmailAlreadyExists, http.StatusConflict},
		{store.ErrUserNotFound, http.StatusNotFound},
		{store.ErrSavedAnimeNotFound, http.StatusNotFound},
		{store.ErrSharedListNotFound, http.StatusNotFound},
		{service.ErrCatalogUnavailable, http.StatusInternalServerError},
		{store.ErrScanningRows, http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestReplyFromError_BodyField(t *testing.T) {
	assert.True(t, replyFromError(service.ErrEmptyQuery).asError)
	assert.True(t, replyFromError(store.ErrSharedListNotFound).asError)
	assert.False(t, replyFromError(store.ErrUserNotFound).asError)
}
