package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

// authedContext builds an echo context carrying userID the way the
// authenticate middleware would have stored it.
func authedContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestTodo_List_QueryParsing(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		target string
		match  func(q model.ListQuery) bool
	}{
		{
			name:   "defaults",
			target: "/todos",
			match: func(q model.ListQuery) bool {
				return q.OwnerID == userID && q.Page == 0 && q.Limit == 0 &&
					!q.ShowDeleted && q.Descending && len(q.Statuses) == 0
			},
		},
		{
			name:   "pagination and sorting",
			target: "/todos?page=3&limit=10&sortBy=title&sortOrder=asc",
			match: func(q model.ListQuery) bool {
				return q.Page == 3 && q.Limit == 10 && q.SortBy == model.SortByTitle && !q.Descending
			},
		},
		{
			name:   "repeated filters resolve to sets",
			target: "/todos?status=pending&status=completed&category=work",
			match: func(q model.ListQuery) bool {
				return len(q.Statuses) == 2 && q.Statuses[0] == model.StatusPending &&
					q.Statuses[1] == model.StatusCompleted &&
					len(q.Categories) == 1 && q.Categories[0] == model.CategoryWork
			},
		},
		{
			name:   "search and show deleted",
			target: "/todos?search=meeting&showDeleted=true",
			match: func(q model.ListQuery) bool {
				return q.Search == "meeting" && q.ShowDeleted
			},
		},
		{
			name:   "garbage page falls back to defaults",
			target: "/todos?page=-2&limit=abc",
			match: func(q model.ListQuery) bool {
				return q.Page == 0 && q.Limit == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewTodoService(t)
			svc.On("List", mock.Anything, mock.MatchedBy(tt.match)).
				Return([]model.Todo{}, model.Pagination{Page: 1, Limit: 10}, nil).Once()

			h := NewTodo(svc, testutil.MakeNoopLogger())

			c, rec := authedContext(http.MethodGet, tt.target, "", userID)
			require.NoError(t, h.List(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":true`)
			assert.Contains(t, rec.Body.String(), `"pagination"`)
			assert.Contains(t, rec.Body.String(), `"data":[]`)
		})
	}
}

func TestTodo_Stats(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewTodoService(t)
	svc.On("Stats", mock.Anything, userID).
		Return(model.Stats{Total: 4, Completed: 1, Pending: 2, Deleted: 1}, nil).Once()

	h := NewTodo(svc, testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodGet, "/todos/stats", "", userID)
	require.NoError(t, h.Stats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":4`)
	assert.Contains(t, rec.Body.String(), `"completed":1`)
	assert.Contains(t, rec.Body.String(), `"pending":2`)
	assert.Contains(t, rec.Body.String(), `"deleted":1`)
}

func TestTodo_Create(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewTodoService(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(p service.CreateTodoParams) bool {
		return p.OwnerID == userID && p.Title == "Buy milk" &&
			p.Category == model.CategoryShopping && p.DueDate != nil &&
			p.DueDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	})).Return(model.Todo{ID: uuid.New(), OwnerID: userID, Title: "Buy milk"}, nil).Once()

	h := NewTodo(svc, testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodPost, "/todos",
		`{"title":"Buy milk","category":"shopping","dueDate":"2026-09-01"}`, userID)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTodo_Create_ValidationError(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewTodoService(t)
	svc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateTodoParams")).
		Return(model.Todo{}, service.NewValidationError("title is required")).Once()

	h := NewTodo(svc, testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodPost, "/todos", `{"category":"shopping"}`, userID)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")
}

func TestTodo_Create_InvalidDueDate(t *testing.T) {
	h := NewTodo(mocks.NewTodoService(t), testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodPost, "/todos",
		`{"title":"Task","category":"work","dueDate":"next tuesday"}`, uuid.New())
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func idContext(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func TestTodo_Update(t *testing.T) {
	userID := uuid.New()
	todoID := uuid.New()

	svc := mocks.NewTodoService(t)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(p service.UpdateTodoParams) bool {
		return p.OwnerID == userID && p.ID == todoID && p.Title == "New title" &&
			p.Category == model.CategoryWork && p.Status == model.Status("")
	})).Return(model.Todo{ID: todoID, OwnerID: userID, Title: "New title"}, nil).Once()

	h := NewTodo(svc, testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodPut, "/todos/"+todoID.String(),
		`{"title":"New title","description":"d","category":"work"}`, userID)
	idContext(c, todoID.String())
	require.NoError(t, h.Update(c))

	// The update route uses the same envelope as every other endpoint.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"data"`)
}

func TestTodo_UpdateStatus(t *testing.T) {
	userID := uuid.New()
	todoID := uuid.New()

	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.TodoService)
		wantCode int
		wantBody string
	}{
		{
			name: "ok",
			body: `{"status":"completed"}`,
			setup: func(svc *mocks.TodoService) {
				svc.On("UpdateStatus", mock.Anything, userID, todoID, model.StatusCompleted).
					Return(model.Todo{ID: todoID, OwnerID: userID, Status: model.StatusCompleted}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"status":"completed"`,
		},
		{
			name: "invalid status",
			body: `{"status":"archived"}`,
			setup: func(svc *mocks.TodoService) {
				svc.On("UpdateStatus", mock.Anything, userID, todoID, model.Status("archived")).
					Return(model.Todo{}, service.NewValidationError("invalid status value")).Once()
			},
			wantCode: http.StatusBadRequest,
			wantBody: "invalid status value",
		},
		{
			name: "not found",
			body: `{"status":"completed"}`,
			setup: func(svc *mocks.TodoService) {
				svc.On("UpdateStatus", mock.Anything, userID, todoID, model.StatusCompleted).
					Return(model.Todo{}, model.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
			wantBody: "Todo not found",
		},
		{
			name: "not authorized",
			body: `{"status":"completed"}`,
			setup: func(svc *mocks.TodoService) {
				svc.On("UpdateStatus", mock.Anything, userID, todoID, model.StatusCompleted).
					Return(model.Todo{}, service.ErrNotAuthorized).Once()
			},
			wantCode: http.StatusUnauthorized,
			wantBody: "Not authorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewTodoService(t)
			tt.setup(svc)

			h := NewTodo(svc, testutil.MakeNoopLogger())

			c, rec := authedContext(http.MethodPatch, "/todos/"+todoID.String()+"/status", tt.body, userID)
			idContext(c, todoID.String())
			require.NoError(t, h.UpdateStatus(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestTodo_DeleteAndRestore(t *testing.T) {
	userID := uuid.New()
	todoID := uuid.New()

	svc := mocks.NewTodoService(t)
	svc.On("SoftDelete", mock.Anything, userID, todoID).
		Return(model.Todo{ID: todoID, OwnerID: userID, IsDeleted: true}, nil).Once()
	svc.On("Restore", mock.Anything, userID, todoID).
		Return(model.Todo{ID: todoID, OwnerID: userID, IsDeleted: false}, nil).Once()

	h := NewTodo(svc, testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodDelete, "/todos/"+todoID.String(), "", userID)
	idContext(c, todoID.String())
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isDeleted":true`)

	c, rec = authedContext(http.MethodPatch, "/todos/"+todoID.String()+"/restore", "", userID)
	idContext(c, todoID.String())
	require.NoError(t, h.Restore(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isDeleted":false`)
}

func TestTodo_MalformedID(t *testing.T) {
	h := NewTodo(mocks.NewTodoService(t), testutil.MakeNoopLogger())

	c, rec := authedContext(http.MethodDelete, "/todos/not-a-uuid", "", uuid.New())
	idContext(c, "not-a-uuid")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
