package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taskloop/taskloop-server/internal/mocks"
	"github.com/taskloop/taskloop-server/internal/model"
	"github.com/taskloop/taskloop-server/internal/service"
	"github.com/taskloop/taskloop-server/internal/testutil"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(_ context.Context) error {
	return p.err
}

func newTestRouter(t *testing.T, pinger Pinger) (*Router, *mocks.AuthService, *mocks.TodoService, *mocks.TokenManager) {
	authService := mocks.NewAuthService(t)
	todoService := mocks.NewTodoService(t)
	tokens := mocks.NewTokenManager(t)

	r := New(authService, todoService, tokens, pinger,
		[]string{"http://localhost:3000"}, testutil.MakeNoopLogger())

	return r, authService, todoService, tokens
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r, _, _, _ := newTestRouter(t, &stubPinger{})
	e := r.Register()

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/todos"},
		{http.MethodGet, "/todos/stats"},
		{http.MethodPost, "/todos"},
		{http.MethodPut, "/todos/" + uuid.NewString()},
		{http.MethodPatch, "/todos/" + uuid.NewString() + "/status"},
		{http.MethodDelete, "/todos/" + uuid.NewString()},
		{http.MethodPatch, "/todos/" + uuid.NewString() + "/restore"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}

func TestRouter_AuthRoutesAreOpen(t *testing.T) {
	r, authService, _, _ := newTestRouter(t, &stubPinger{})
	e := r.Register()

	authService.On("Login", mock.Anything, "ada@example.com", "hunter22").
		Return(service.Session{Token: "tok", User: model.PublicUser{ID: uuid.New()}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)
}

func TestRouter_TokenFlowReachesHandler(t *testing.T) {
	r, _, todoService, tokens := newTestRouter(t, &stubPinger{})
	e := r.Register()

	userID := uuid.New()
	tokens.On("Parse", "valid-token").Return(userID, nil).Once()
	todoService.On("Stats", mock.Anything, userID).
		Return(model.Stats{Total: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/todos/stats", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestRouter_UnknownRouteUsesEnvelope(t *testing.T) {
	r, _, _, _ := newTestRouter(t, &stubPinger{})
	e := r.Register()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), `"message"`)
}

func TestRouter_Health(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		r, _, _, _ := newTestRouter(t, &stubPinger{})
		e := r.Register()

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		r, _, _, _ := newTestRouter(t, &stubPinger{err: errors.New("connection refused")})
		e := r.Register()

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
