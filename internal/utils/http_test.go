// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
	}{
		{
			name:       "saved entry",
			data:       map[string]any{"anime_id": 5114, "watched": true},
			status:     http.StatusOK,
			wantBody:   `{"anime_id":5114,"watched":true}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "error body",
			data:       map[string]string{"error": "Anime not found"},
			status:     http.StatusNotFound,
			wantBody:   `{"error":"Anime not found"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty list",
			data:       []int{},
			status:     http.StatusOK,
			wantBody:   `[]`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusCreated,
			wantBody:   `null`,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, w.Body.Len(), n)
		})
	}
}

func TestWriteJSON_Unmarshallable(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]any{"ch": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
