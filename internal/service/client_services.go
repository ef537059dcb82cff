// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	ListService    ClientListService
	CatalogService ClientCatalogService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, alerter Alerter, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(storages.SessionStore, serverAdapter, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		ListService:    NewClientListService(sessionSvc, alerter, logger),
		CatalogService: NewClientCatalogService(serverAdapter, alerter, logger),
	}
}
