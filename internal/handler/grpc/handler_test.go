// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/service/mock"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const (
	testUserID = "0b9c6f7e-4c5e-4a59-9f0e-3f2d1c8e7a10"
	bufSize    = 1024 * 1024
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// startTestServer поднимает gRPC сервер на bufconn и возвращает клиентское соединение
func startTestServer(t *testing.T) (*grpc.ClientConn, *mock.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userService := mock.NewMockUserService(ctrl)

	h := NewHandler(&service.Services{UserService: userService}, logger.Nop())

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptors()...))
	h.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, userService
}

// ─────────────────────────────────────────────
// GetUser
// ─────────────────────────────────────────────

func TestGetUser_Success(t *testing.T) {
	conn, userService := startTestServer(t)

	want := models.User{
		ID:        testUserID,
		Name:      "rei",
		Email:     "rei@nerv.jp",
		SavedList: []models.SavedAnime{{AnimeID: "30", Watched: true}},
	}
	userService.EXPECT().GetUser(gomock.Any(), testUserID).Return(want, nil)

	var got models.User
	err := conn.Invoke(context.Background(), GetUserMethod, &models.UserIDRequest{ID: testUserID}, &got)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.SavedList, got.SavedList)
}

func TestGetUser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		svcErr   error
		callsSvc bool
		wantCode codes.Code
	}{
		{name: "malformed id", id: "not-a-uuid", wantCode: codes.NotFound},
		{name: "empty id", id: "", wantCode: codes.NotFound},
		{name: "unknown user", id: testUserID, svcErr: store.ErrUserNotFound, callsSvc: true, wantCode: codes.NotFound},
		{name: "invalid data", id: testUserID, svcErr: service.ErrInvalidDataProvided, callsSvc: true, wantCode: codes.InvalidArgument},
		{name: "db failure", id: testUserID, svcErr: errors.New("connection reset"), callsSvc: true, wantCode: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, userService := startTestServer(t)
			if tt.callsSvc {
				userService.EXPECT().GetUser(gomock.Any(), tt.id).Return(models.User{}, tt.svcErr)
			}

			var got models.User
			err := conn.Invoke(context.Background(), GetUserMethod, &models.UserIDRequest{ID: tt.id}, &got)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestGetUser_InternalErrorIsNotLeaked(t *testing.T) {
	conn, userService := startTestServer(t)
	userService.EXPECT().GetUser(gomock.Any(), testUserID).Return(models.User{}, errors.New("password=secret"))

	var got models.User
	err := conn.Invoke(context.Background(), GetUserMethod, &models.UserIDRequest{ID: testUserID}, &got)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.NotContains(t, st.Message(), "secret")
}

// ─────────────────────────────────────────────
// GetSavedList
// ─────────────────────────────────────────────

func TestGetSavedList_Success(t *testing.T) {
	conn, userService := startTestServer(t)

	list := []models.SavedAnime{
		{AnimeID: "1", Watched: false},
		{AnimeID: "5114", Watched: true},
	}
	userService.EXPECT().GetSavedList(gomock.Any(), testUserID).Return(list, nil)

	var got models.SavedListResponse
	err := conn.Invoke(context.Background(), GetSavedListMethod, &models.UserIDRequest{ID: testUserID}, &got)

	require.NoError(t, err)
	assert.Equal(t, list, got.SavedList)
}

func TestGetSavedList_NilListBecomesEmpty(t *testing.T) {
	conn, userService := startTestServer(t)
	userService.EXPECT().GetSavedList(gomock.Any(), testUserID).Return(nil, nil)

	var got models.SavedListResponse
	err := conn.Invoke(context.Background(), GetSavedListMethod, &models.UserIDRequest{ID: testUserID}, &got)

	require.NoError(t, err)
	assert.NotNil(t, got.SavedList)
	assert.Empty(t, got.SavedList)
}

func TestGetSavedList_UnknownUser(t *testing.T) {
	conn, userService := startTestServer(t)
	userService.EXPECT().GetSavedList(gomock.Any(), testUserID).Return(nil, store.ErrUserNotFound)

	var got models.SavedListResponse
	err := conn.Invoke(context.Background(), GetSavedListMethod, &models.UserIDRequest{ID: testUserID}, &got)

	assert.Equal(t, codes.NotFound, status.Code(err))
}

// ─────────────────────────────────────────────
// Interceptors
// ─────────────────────────────────────────────

func TestTraceID_EchoedInHeader(t *testing.T) {
	conn, userService := startTestServer(t)
	userService.EXPECT().GetSavedList(gomock.Any(), testUserID).Return(nil, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-42")
	var header metadata.MD
	var got models.SavedListResponse
	err := conn.Invoke(ctx, GetSavedListMethod, &models.UserIDRequest{ID: testUserID}, &got, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, []string{"trace-42"}, header.Get(traceIDKey))
}

func TestTraceID_GeneratedWhenMissing(t *testing.T) {
	conn, userService := startTestServer(t)
	userService.EXPECT().GetSavedList(gomock.Any(), testUserID).Return(nil, nil)

	var header metadata.MD
	var got models.SavedListResponse
	err := conn.Invoke(context.Background(), GetSavedListMethod, &models.UserIDRequest{ID: testUserID}, &got, grpc.Header(&header))

	require.NoError(t, err)
	require.Len(t, header.Get(traceIDKey), 1)
	assert.Len(t, header.Get(traceIDKey)[0], 36)
}

func TestUnknownMethod(t *testing.T) {
	conn, _ := startTestServer(t)

	var got models.User
	err := conn.Invoke(context.Background(), "/"+UserServiceName+"/DeleteUser", &models.UserIDRequest{ID: testUserID}, &got)

	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestCodecName(t *testing.T) {
	assert.Equal(t, "json", jsonCodec{}.Name())
}
