// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/models"
)

// userIDKey is the SessionStore key of the stored identifier.
const userIDKey = "userId"

type clientSessionService struct {
	sessions store.SessionStore
	server   adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientSessionService(sessions store.SessionStore, server adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions: sessions,
		server:   server,
		logger:   logger,
	}
}

func (c *clientSessionService) IsLoggedIn(ctx context.Context) bool {
	_, err := c.verify(ctx)
	return err == nil
}

func (c *clientSessionService) Logout(ctx context.Context) {
	if err := c.sessions.Remove(ctx, userIDKey); err != nil {
		c.logger.Err(err).Str("func", "*clientSessionService.Logout").Msg("failed to remove stored user id")
	}
	c.server.SetToken("")
}

func (c *clientSessionService) Authenticate(ctx context.Context) (*AuthenticatedSession, error) {
	user, err := c.verify(ctx)
	if err != nil {
		return nil, err
	}

	return newAuthenticatedSession(user, c.server, c.logger), nil
}

func (c *clientSessionService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := c.server.Login(ctx, req)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientSessionService.Login").Msg("login failed")
		return models.LoginResponse{}, mapAdapterError(err)
	}
	if resp.ID == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login response has no user id", ErrInvalidDataProvided)
	}

	if err = c.sessions.Set(ctx, userIDKey, resp.ID); err != nil {
		return models.LoginResponse{}, fmt.Errorf("error storing user id: %w", err)
	}

	c.logger.Info().Str("user_id", resp.ID).Bool("is_admin", resp.IsAdmin).Msg("logged in")
	return resp, nil
}

func (c *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := c.server.Register(ctx, req); err != nil {
		c.logger.Err(err).Str("func", "*clientSessionService.Register").Msg("registration failed")
		return mapAdapterError(err)
	}
	return nil
}

// verify reads the stored identifier and confirms it with GET /user/{id}.
// Every failure is logged and reported as ErrNotLoggedIn.
func (c *clientSessionService) verify(ctx context.Context) (models.User, error) {
	userID, err := c.sessions.Get(ctx, userIDKey)
	if err != nil {
		if !errors.Is(err, store.ErrSessionValueNotFound) {
			c.logger.Err(err).Str("func", "*clientSessionService.verify").Msg("failed to read stored user id")
		}
		return models.User{}, ErrNotLoggedIn
	}

	user, err := c.server.GetUser(ctx, userID)
	if err != nil {
		c.logger.Debug().Err(err).Str("user_id", userID).Msg("error checking login status")
		return models.User{}, ErrNotLoggedIn
	}

	c.logger.Debug().Str("user_id", user.ID).Msg("login status")
	if user.ID != userID {
		return models.User{}, ErrNotLoggedIn
	}

	return user, nil
}
