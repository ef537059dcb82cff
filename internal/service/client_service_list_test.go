// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/app"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/mock"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type listFixture struct {
	svc      ClientListService
	sessions *mock.MockSessionStore
	server   *mock.MockServerAdapter
	alerter  *recordingAlerter
}

func newListFixture(ctrl *gomock.Controller) listFixture {
	sessions := mock.NewMockSessionStore(ctrl)
	server := mock.NewMockServerAdapter(ctrl)
	alerter := &recordingAlerter{}

	sessionSvc := NewClientSessionService(sessions, server, logger.Nop())
	return listFixture{
		svc:      NewClientListService(sessionSvc, alerter, logger.Nop()),
		sessions: sessions,
		server:   server,
		alerter:  alerter,
	}
}

// loggedIn настраивает сохранённый id и ответ GET /user/{id}
func (f listFixture) loggedIn(user models.User) {
	f.sessions.EXPECT().Get(gomock.Any(), userIDKey).Return(user.ID, nil).AnyTimes()
	f.server.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
}

func (f listFixture) loggedOut() {
	f.sessions.EXPECT().Get(gomock.Any(), userIDKey).Return("", store.ErrSessionValueNotFound).AnyTimes()
}

// ── Unauthenticated ──────────────────────────────────────────────────────────

func TestClientList_Unauthenticated_NoNetworkCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedOut()
	ctx := context.Background()

	// ни одного вызова сервера: мок упадёт на любом неожиданном вызове
	assert.False(t, f.svc.AddAnime(ctx, "21"))
	assert.False(t, f.svc.RemoveAnime(ctx, "21"))
	assert.False(t, f.svc.UpdateAnime(ctx, "21", true))
	_, ok := f.svc.ShareList(ctx)
	assert.False(t, ok)

	list := f.svc.FetchSavedList(ctx)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	assert.Equal(t, []string{
		app.MsgLoginRequired, app.MsgLoginRequired, app.MsgLoginRequired,
		app.MsgLoginRequired, app.MsgLoginRequired,
	}, f.alerter.Messages())
}

func TestClientList_FetchUser_Unauthenticated_NoAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedOut()

	_, ok := f.svc.FetchUser(context.Background())
	assert.False(t, ok)
	assert.Empty(t, f.alerter.Messages())
}

// ── Authenticated ────────────────────────────────────────────────────────────

func TestClientList_AddRemoveUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedIn(models.User{ID: "u1"})
	ctx := context.Background()

	f.server.EXPECT().AddAnime(gomock.Any(), "u1", models.SaveAnimeRequest{AnimeID: "21", Watched: false}).Return(nil)
	f.server.EXPECT().UpdateAnime(gomock.Any(), "u1", models.SaveAnimeRequest{AnimeID: "21", Watched: true}).Return(nil)
	f.server.EXPECT().RemoveAnime(gomock.Any(), "u1", models.RemoveAnimeRequest{AnimeID: "21"}).Return(nil)

	assert.True(t, f.svc.AddAnime(ctx, "21"))
	assert.True(t, f.svc.UpdateAnime(ctx, "21", true))
	assert.True(t, f.svc.RemoveAnime(ctx, "21"))
	assert.Empty(t, f.alerter.Messages())
}

func TestClientList_UpdateFailureAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedIn(models.User{ID: "u1"})

	f.server.EXPECT().UpdateAnime(gomock.Any(), "u1", gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, `{"message":"Anime is not in the saved list!"}`))

	assert.False(t, f.svc.UpdateAnime(context.Background(), "99", true))
	assert.Equal(t, []string{app.MsgUpdateFailed}, f.alerter.Messages())
}

func TestClientList_AddFailureIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedIn(models.User{ID: "u1"})

	f.server.EXPECT().AddAnime(gomock.Any(), "u1", gomock.Any()).Return(adapter.ErrInternalServerError)

	assert.False(t, f.svc.AddAnime(context.Background(), "21"))
	assert.Empty(t, f.alerter.Messages())
}

func TestClientList_FetchSavedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	list := []models.SavedAnime{{AnimeID: "21", Watched: true}, {AnimeID: "5114"}}
	f.loggedIn(models.User{ID: "u1", SavedList: list})

	assert.Equal(t, list, f.svc.FetchSavedList(context.Background()))
}

func TestClientList_FetchSavedList_AbsentField(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedIn(models.User{ID: "u1"})

	list := f.svc.FetchSavedList(context.Background())
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestClientList_ShareList(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	list := []models.SavedAnime{{AnimeID: "21"}}
	f.loggedIn(models.User{ID: "u1", SavedList: list})

	f.server.EXPECT().ShareList(gomock.Any(), models.ShareListRequest{UserID: "u1", AnimeList: list}).
		Return("http://localhost:5173/shared-list/abc", nil)

	link, ok := f.svc.ShareList(context.Background())
	require.True(t, ok)
	assert.Equal(t, "http://localhost:5173/shared-list/abc", link)
}

func TestClientList_ShareFailureAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newListFixture(ctrl)
	f.loggedIn(models.User{ID: "u1"})

	f.server.EXPECT().ShareList(gomock.Any(), gomock.Any()).Return("", adapter.ErrInternalServerError)

	_, ok := f.svc.ShareList(context.Background())
	assert.False(t, ok)
	assert.Equal(t, []string{app.MsgShareFailed}, f.alerter.Messages())
}

// ── AuthenticatedSession ─────────────────────────────────────────────────────

func TestAuthenticatedSession_SingleVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStore(ctrl)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSessionService(sessions, server, logger.Nop())
	ctx := context.Background()

	sessions.EXPECT().Get(gomock.Any(), userIDKey).Return("u1", nil).Times(1)
	// ровно один GET /user/{id} на всю серию операций
	server.EXPECT().GetUser(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil).Times(1)
	server.EXPECT().AddAnime(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(2)
	server.EXPECT().UpdateAnime(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(1)
	server.EXPECT().RemoveAnime(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(1)
	server.EXPECT().ShareList(gomock.Any(), models.ShareListRequest{
		UserID:    "u1",
		AnimeList: []models.SavedAnime{{AnimeID: "5114", Watched: true}},
	}).Return("link", nil).Times(1)

	session, err := svc.Authenticate(ctx)
	require.NoError(t, err)

	require.NoError(t, session.AddAnime(ctx, "21"))
	require.NoError(t, session.AddAnime(ctx, "5114"))
	require.NoError(t, session.UpdateAnime(ctx, "5114", true))
	require.NoError(t, session.RemoveAnime(ctx, "21"))

	link, err := session.ShareList(ctx)
	require.NoError(t, err)
	assert.Equal(t, "link", link)
}

func TestAuthenticatedSession_LocalListFollowsMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	session := newAuthenticatedSession(models.User{ID: "u1", SavedList: []models.SavedAnime{{AnimeID: "21"}}}, server, logger.Nop())
	ctx := context.Background()

	server.EXPECT().AddAnime(gomock.Any(), "u1", gomock.Any()).Return(nil).Times(2)
	server.EXPECT().UpdateAnime(gomock.Any(), "u1", gomock.Any()).Return(nil)

	// повторное добавление не создаёт дубль
	require.NoError(t, session.AddAnime(ctx, "21"))
	require.NoError(t, session.AddAnime(ctx, "1"))
	require.NoError(t, session.UpdateAnime(ctx, "1", true))

	assert.Equal(t, []models.SavedAnime{{AnimeID: "21"}, {AnimeID: "1", Watched: true}}, session.SavedList())

	// копия не влияет на сессию
	copied := session.SavedList()
	copied[0].Watched = true
	assert.False(t, session.SavedList()[0].Watched)
}

func TestAuthenticatedSession_FailedMutationKeepsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	session := newAuthenticatedSession(models.User{ID: "u1", SavedList: []models.SavedAnime{{AnimeID: "21"}}}, server, logger.Nop())

	server.EXPECT().RemoveAnime(gomock.Any(), "u1", gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, `{"message":"User not found!"}`))

	err := session.RemoveAnime(context.Background(), "21")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.Len(t, session.SavedList(), 1)
}
