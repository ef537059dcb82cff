// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/models"
)

// clientListService implements ClientListService on top of
// ClientSessionService.Authenticate: one verification per call.
type clientListService struct {
	sessions ClientSessionService
	alerter  Alerter

	logger *logger.Logger
}

func NewClientListService(sessions ClientSessionService, alerter Alerter, logger *logger.Logger) ClientListService {
	return &clientListService{
		sessions: sessions,
		alerter:  alerter,
		logger:   logger,
	}
}

func (l *clientListService) AddAnime(ctx context.Context, animeID string) bool {
	session, ok := l.authenticate(ctx)
	if !ok {
		return false
	}

	if err := session.AddAnime(ctx, animeID); err != nil {
		l.logger.Err(err).Str("anime_id", animeID).Msg("error adding anime")
		return false
	}
	return true
}

func (l *clientListService) RemoveAnime(ctx context.Context, animeID string) bool {
	session, ok := l.authenticate(ctx)
	if !ok {
		return false
	}

	if err := session.RemoveAnime(ctx, animeID); err != nil {
		l.logger.Err(err).Str("anime_id", animeID).Msg("error removing anime")
		return false
	}
	return true
}

func (l *clientListService) UpdateAnime(ctx context.Context, animeID string, watched bool) bool {
	session, ok := l.authenticate(ctx)
	if !ok {
		return false
	}

	if err := session.UpdateAnime(ctx, animeID, watched); err != nil {
		l.logger.Err(err).Str("anime_id", animeID).Bool("watched", watched).Msg("error updating anime")
		l.alerter.Alert(ctx, app.MsgUpdateFailed)
		return false
	}
	return true
}

func (l *clientListService) FetchUser(ctx context.Context) (models.User, bool) {
	session, err := l.sessions.Authenticate(ctx)
	if err != nil {
		return models.User{}, false
	}

	user := session.User()
	l.logger.Debug().Str("user_id", user.ID).Int("saved", len(user.SavedList)).Msg("fetched user")
	return user, true
}

func (l *clientListService) FetchSavedList(ctx context.Context) []models.SavedAnime {
	session, ok := l.authenticate(ctx)
	if !ok {
		return []models.SavedAnime{}
	}
	return session.SavedList()
}

func (l *clientListService) ShareList(ctx context.Context) (string, bool) {
	session, ok := l.authenticate(ctx)
	if !ok {
		return "", false
	}

	link, err := session.ShareList(ctx)
	if err != nil {
		l.logger.Err(err).Msg("error sharing list")
		l.alerter.Alert(ctx, app.MsgShareFailed)
		return "", false
	}
	return link, true
}

// authenticate alerts the user when the session check fails.
func (l *clientListService) authenticate(ctx context.Context) (*AuthenticatedSession, bool) {
	session, err := l.sessions.Authenticate(ctx)
	if err != nil {
		l.alerter.Alert(ctx, app.MsgLoginRequired)
		return nil, false
	}
	return session, true
}
