// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/anime-saver/internal/crypto"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/mock"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/validators"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

// newTestAuthSvc: хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := &authService{
		userRepository: repo,
		hasher:         hasher,
		validator:      validators.NewRequestValidator(),
		sanitizer:      validators.NewSanitizer(),
		ids:            fixedID("0192f1c4-8b7a-7cde-9f00-123456789abc"),
		tokenSignKey:   "sign-key",
		tokenIssuer:    "anime-saver",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
	return svc, repo, hasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "0192f1c4-8b7a-7cde-9f00-123456789abc", u.ID)
			assert.Equal(t, "Alice", u.Name, "имя должно быть очищено от разметки")
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "bcrypt-hash", u.PasswordHash)
			assert.True(t, u.IsAdmin)
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.RegisterRequest{
		UserName:     "<b>Alice</b>",
		UserEmail:    " Alice@Example.com ",
		UserPassword: "secret1",
		IsAdmin:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "0192f1c4-8b7a-7cde-9f00-123456789abc", user.ID)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	// имя из одной разметки после очистки становится пустым
	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		UserName:     "<script>x</script>",
		UserEmail:    "alice@example.com",
		UserPassword: "secret1",
	})
	assert.ErrorIs(t, err, validators.ErrMissingRequiredFields)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		UserName: "alice", UserEmail: "alice@example.com", UserPassword: "secret1",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		UserName: "alice", UserEmail: "alice@example.com", UserPassword: "secret1",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: "u1", Email: "alice@example.com", PasswordHash: "hash"}
	repo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)
	hasher.EXPECT().Compare("hash", "secret1").Return(nil)

	user, err := svc.Login(ctx, models.LoginRequest{UserEmail: "alice@example.com", UserPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name  string
		req   models.LoginRequest
		setup func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		want  error
	}{
		{
			name:  "empty request",
			req:   models.LoginRequest{},
			setup: func(*mock.MockUserRepository, *mock.MockPasswordHasher) {},
			want:  ErrWrongPassword,
		},
		{
			name: "unknown email",
			req:  models.LoginRequest{UserEmail: "ghost@example.com", UserPassword: "x"},
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
			},
			want: ErrWrongPassword,
		},
		{
			name: "wrong password",
			req:  models.LoginRequest{UserEmail: "alice@example.com", UserPassword: "bad"},
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{PasswordHash: "hash"}, nil)
				hasher.EXPECT().Compare("hash", "bad").Return(crypto.ErrPasswordMismatch)
			},
			want: ErrWrongPassword,
		},
		{
			name: "db failure",
			req:  models.LoginRequest{UserEmail: "alice@example.com", UserPassword: "x"},
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)
			},
			want: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(repo, hasher)

			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// токен, подписанный другим ключом
	other, _, _ := newTestAuthSvc(t, ctrl)
	other.tokenSignKey = "another-key"
	token, err := other.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
