// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/models"
)

// AuthenticatedSession is the result of one successful Authenticate. It
// carries the verified user record and never checks the session again, so a
// screen that issues several calls pays for a single GET /user/{id}.
//
// The saved list held by the session is updated locally after every
// successful mutation. It is never refetched.
type AuthenticatedSession struct {
	server adapter.ServerAdapter
	logger *logger.Logger

	mu   sync.Mutex
	user models.User
}

func newAuthenticatedSession(user models.User, server adapter.ServerAdapter, logger *logger.Logger) *AuthenticatedSession {
	if user.SavedList == nil {
		user.SavedList = []models.SavedAnime{}
	}
	return &AuthenticatedSession{
		server: server,
		logger: logger,
		user:   user,
	}
}

func (s *AuthenticatedSession) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.ID
}

// User returns a copy of the verified record.
func (s *AuthenticatedSession) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.user
	user.SavedList = slices.Clone(s.user.SavedList)
	return user
}

// SavedList returns a copy of the saved list. It is never nil.
func (s *AuthenticatedSession) SavedList() []models.SavedAnime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.user.SavedList)
}

func (s *AuthenticatedSession) AddAnime(ctx context.Context, animeID string) error {
	req := models.SaveAnimeRequest{AnimeID: animeID, Watched: false}
	if err := s.server.AddAnime(ctx, s.UserID(), req); err != nil {
		return mapAdapterError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(animeID) == -1 {
		s.user.SavedList = append(s.user.SavedList, models.SavedAnime{AnimeID: animeID})
	}
	return nil
}

func (s *AuthenticatedSession) RemoveAnime(ctx context.Context, animeID string) error {
	if err := s.server.RemoveAnime(ctx, s.UserID(), models.RemoveAnimeRequest{AnimeID: animeID}); err != nil {
		return mapAdapterError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.SavedList = slices.DeleteFunc(s.user.SavedList, func(entry models.SavedAnime) bool {
		return entry.AnimeID == animeID
	})
	return nil
}

func (s *AuthenticatedSession) UpdateAnime(ctx context.Context, animeID string, watched bool) error {
	req := models.SaveAnimeRequest{AnimeID: animeID, Watched: watched}
	if err := s.server.UpdateAnime(ctx, s.UserID(), req); err != nil {
		return mapAdapterError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(animeID); i != -1 {
		s.user.SavedList[i].Watched = watched
	}
	return nil
}

// ShareList publishes the current saved list and returns the link.
func (s *AuthenticatedSession) ShareList(ctx context.Context) (string, error) {
	req := models.ShareListRequest{UserID: s.UserID(), AnimeList: s.SavedList()}

	link, err := s.server.ShareList(ctx, req)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return link, nil
}

// indexOf must be called with mu held.
func (s *AuthenticatedSession) indexOf(animeID string) int {
	return slices.IndexFunc(s.user.SavedList, func(entry models.SavedAnime) bool {
		return entry.AnimeID == animeID
	})
}
