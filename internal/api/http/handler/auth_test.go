package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskloop/taskloop-server/internal/mocks"
	"github.com/taskloop/taskloop-server/internal/model"
	"github.com/taskloop/taskloop-server/internal/service"
	"github.com/taskloop/taskloop-server/internal/testutil"
)

func postJSON(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_Register(t *testing.T) {
	userID := uuid.New()
	session := service.Session{
		Token: "signed-token",
		User:  model.PublicUser{ID: userID, Name: "Ada", Email: "ada@example.com"},
	}

	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.AuthService)
		wantCode int
		wantBody []string
	}{
		{
			name: "created",
			body: `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "Ada", "ada@example.com", "s3cret").Return(session, nil).Once()
			},
			wantCode: http.StatusCreated,
			wantBody: []string{`"success":true`, `"token":"signed-token"`, `"email":"ada@example.com"`},
		},
		{
			name: "duplicate email",
			body: `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Register", mock.Anything, "Ada", "ada@example.com", "s3cret").
					Return(service.Session{}, service.ErrEmailTaken).Once()
			},
			wantCode: http.StatusBadRequest,
			wantBody: []string{`"success":false`, "Email already registered"},
		},
		{
			name:     "malformed body",
			body:     `{"name":`,
			setup:    func(svc *mocks.AuthService) {},
			wantCode: http.StatusBadRequest,
			wantBody: []string{`"success":false`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewAuthService(t)
			tt.setup(svc)

			h := NewAuth(svc, testutil.MakeNoopLogger())

			c, rec := postJSON("/auth/register", tt.body)
			require.NoError(t, h.Register(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), fragment)
			}
			// Password hashes never appear in responses.
			assert.NotContains(t, rec.Body.String(), "password")
		})
	}
}

func TestAuth_Login(t *testing.T) {
	session := service.Session{
		Token: "signed-token",
		User:  model.PublicUser{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"},
	}

	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.AuthService)
		wantCode int
		wantBody []string
	}{
		{
			name: "ok",
			body: `{"email":"ada@example.com","password":"s3cret"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Login", mock.Anything, "ada@example.com", "s3cret").Return(session, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"success":true`, `"token":"signed-token"`},
		},
		{
			name:     "missing fields",
			body:     `{"email":"ada@example.com"}`,
			setup:    func(svc *mocks.AuthService) {},
			wantCode: http.StatusBadRequest,
			wantBody: []string{"Please provide email and password"},
		},
		{
			name: "invalid credentials",
			body: `{"email":"ada@example.com","password":"wrong"}`,
			setup: func(svc *mocks.AuthService) {
				svc.On("Login", mock.Anything, "ada@example.com", "wrong").
					Return(service.Session{}, service.ErrInvalidCredentials).Once()
			},
			wantCode: http.StatusUnauthorized,
			wantBody: []string{`"success":false`, "Invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewAuthService(t)
			tt.setup(svc)

			h := NewAuth(svc, testutil.MakeNoopLogger())

			c, rec := postJSON("/auth/login", tt.body)
			require.NoError(t, h.Login(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), fragment)
			}
		})
	}
}
