// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the read-only part of the user API over gRPC.
//
// Messages are the same models structs the HTTP API uses, encoded as JSON
// through a registered codec, so callers must set the "json" content
// subtype.
package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/utils"
	"github.com/MKhiriev/anime-saver/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

var _ UserServiceServer = (*Handler)(nil)

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&userServiceDesc, h)
}

// UnaryInterceptors returns the interceptor chain the server must install.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
	}
}

func (h *Handler) GetUser(ctx context.Context, req *models.UserIDRequest) (*models.User, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(req.ID) {
		return nil, status.Error(codes.NotFound, store.ErrUserNotFound.Error())
	}

	user, err := h.services.UserService.GetUser(ctx, req.ID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.GetUser").Str("user_id", req.ID).Msg("error getting user")
		return nil, toStatus(err)
	}

	return &user, nil
}

func (h *Handler) GetSavedList(ctx context.Context, req *models.UserIDRequest) (*models.SavedListResponse, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(req.ID) {
		return nil, status.Error(codes.NotFound, store.ErrUserNotFound.Error())
	}

	list, err := h.services.UserService.GetSavedList(ctx, req.ID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.GetSavedList").Str("user_id", req.ID).Msg("error getting saved list")
		return nil, toStatus(err)
	}
	if list == nil {
		list = []models.SavedAnime{}
	}

	return &models.SavedListResponse{SavedList: list}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return status.Error(codes.NotFound, store.ErrUserNotFound.Error())
	case errors.Is(err, service.ErrInvalidDataProvided):
		return status.Error(codes.InvalidArgument, service.ErrInvalidDataProvided.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
