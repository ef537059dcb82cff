// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "0192f1c4-8b7a-7cde-9f00-123456789abc"

func TestGetUser_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.user.EXPECT().GetUser(gomock.Any(), testUserID).Return(models.User{
		ID:           testUserID,
		Name:         "Alice",
		PasswordHash: "must-not-leak",
		SavedList:    []models.SavedAnime{{AnimeID: "21", Watched: true}},
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/user/"+testUserID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, testUserID, body["_id"])
	assert.Len(t, body["savedList"], 1)
	assert.NotContains(t, rec.Body.String(), "must-not-leak")
}

func TestGetUser_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.user.EXPECT().GetUser(gomock.Any(), testUserID).
		Return(models.User{}, fmt.Errorf("error getting user: %w", store.ErrUserNotFound))

	rec := doRequest(t, router, http.MethodGet, "/user/"+testUserID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeBody(t, rec)["message"])
}

func TestGetUser_MalformedIDIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	// сервис не вызывается
	rec := doRequest(t, router, http.MethodGet, "/user/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeBody(t, rec)["message"])
}

func TestAddAnime(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.user.EXPECT().AddAnime(gomock.Any(), testUserID, models.SaveAnimeRequest{AnimeID: "21"}).Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/user/"+testUserID+"/add_anime", `{"anime_id":"21","watched":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgAnimeAdded, decodeBody(t, rec)["message"])
}

func TestAddAnime_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unknown user", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"missing anime id", validators.ErrMissingRequiredFields, http.StatusBadRequest, app.MsgMissingRequiredFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.user.EXPECT().AddAnime(gomock.Any(), testUserID, gomock.Any()).Return(tt.err)

			rec := doRequest(t, router, http.MethodPost, "/user/"+testUserID+"/add_anime", `{}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, rec)["message"])
		})
	}
}

func TestRemoveAnime(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.user.EXPECT().RemoveAnime(gomock.Any(), testUserID, models.RemoveAnimeRequest{AnimeID: "21"}).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/user/"+testUserID+"/remove_anime", `{"anime_id":"21"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgAnimeRemoved, decodeBody(t, rec)["message"])
}

func TestUpdateAnime(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.user.EXPECT().UpdateAnime(gomock.Any(), testUserID, models.SaveAnimeRequest{AnimeID: "21", Watched: true}).Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/user/"+testUserID+"/update_anime", `{"anime_id":"21","watched":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgAnimeUpdated, decodeBody(t, rec)["message"])
}

func TestUpdateAnime_EntryNotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.user.EXPECT().UpdateAnime(gomock.Any(), testUserID, gomock.Any()).
		Return(fmt.Errorf("error updating anime: %w", store.ErrSavedAnimeNotFound))

	rec := doRequest(t, router, http.MethodPut, "/user/"+testUserID+"/update_anime", `{"anime_id":"99","watched":true}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgSavedAnimeNotFound, decodeBody(t, rec)["message"])
}
