// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ShareService   ShareService
	CatalogService CatalogService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, catalog adapter.CatalogAdapter, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	userService := NewUserValidationService(validator).
		Wrap(NewUserService(storages.UserRepository, storages.SavedAnimeRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:    userService,
		ShareService:   NewShareService(storages.SharedListRepository, validator, cfg.App, logger),
		CatalogService: NewCatalogService(catalog, validator, logger),
		AdminService:   NewAdminService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
