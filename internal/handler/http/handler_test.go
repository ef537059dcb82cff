// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type testServices struct {
	auth    *mock.MockAuthService
	user    *mock.MockUserService
	share   *mock.MockShareService
	catalog *mock.MockCatalogService
	admin   *mock.MockAdminService
}

// newTestRouter: роутер со всеми middleware и моками сервисов
func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		user:    mock.NewMockUserService(ctrl),
		share:   mock.NewMockShareService(ctrl),
		catalog: mock.NewMockCatalogService(ctrl),
		admin:   mock.NewMockAdminService(ctrl),
	}
	svcs := &service.Services{
		AuthService:    mocks.auth,
		UserService:    mocks.user,
		ShareService:   mocks.share,
		CatalogService: mocks.catalog,
		AdminService:   mocks.admin,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(svcs, logger.Nop()).Init(), mocks
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}
