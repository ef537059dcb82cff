// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
)

type adminService struct {
	users store.UserRepository

	logger *logger.Logger
}

func NewAdminService(users store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{
		users:  users,
		logger: logger,
	}
}

// AdminData re-reads the user on every call, so revoking the admin flag
// takes effect before the token expires. A token of a deleted user is
// treated as a non-admin.
func (a *adminService) AdminData(ctx context.Context, userID string) (string, error) {
	user, err := a.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return "", ErrAdminAccessRequired
	}
	if err != nil {
		return "", fmt.Errorf("error getting user: %w", err)
	}

	if !user.IsAdmin {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Msg("non-admin requested admin data")
		return "", ErrAdminAccessRequired
	}

	return app.MsgAdminData, nil
}
