package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskloop/taskloop-server/internal/api/http/middleware"
	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
	"github.com/taskloop/taskloop-server/internal/service"
)

// TodoService defines the task lifecycle operations.
type TodoService interface {
	Create(ctx context.Context, params service.CreateTodoParams) (model.Todo, error)
	List(ctx context.Context, query model.ListQuery) ([]model.Todo, model.Pagination, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (model.Stats, error)
	Update(ctx context.Context, params service.UpdateTodoParams) (model.Todo, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status model.Status) (model.Todo, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error)
	Restore(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error)
}

// Todo handles the /todos endpoints.
type Todo struct {
	todoService TodoService
	logger      *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, logger *logger.Logger) *Todo {
	return &Todo{
		todoService: todoService,
		logger:      logger,
	}
}

type todoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// List returns a filtered, sorted, paginated page of the user's todos.
func (h *Todo) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	query := model.ListQuery{
		OwnerID:     userID,
		Statuses:    parseStatuses(c.QueryParams()["status"]),
		Categories:  parseCategories(c.QueryParams()["category"]),
		Search:      c.QueryParam("search"),
		ShowDeleted: c.QueryParam("showDeleted") == "true",
		SortBy:      model.SortField(c.QueryParam("sortBy")),
		Descending:  c.QueryParam("sortOrder") != "asc",
		Page:        parsePositiveInt(c.QueryParam("page")),
		Limit:       parsePositiveInt(c.QueryParam("limit")),
	}

	todos, pagination, err := h.todoService.List(c.Request().Context(), query)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, newListResponse(todos, pagination))
}

// Stats returns aggregate counts over all of the user's todos.
func (h *Todo) Stats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	stats, err := h.todoService.Stats(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, newDataResponse(stats))
}

// Create persists a new todo owned by the authenticated user.
func (h *Todo) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid request body"))
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid due date"))
	}

	todo, err := h.todoService.Create(c.Request().Context(), service.CreateTodoParams{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(req.Category),
		DueDate:     dueDate,
		Status:      model.Status(req.Status),
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, newDataResponse(todo))
}

// Update replaces the fields of an owned todo.
func (h *Todo) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, newErrorResponse("Todo not found"))
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid request body"))
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid due date"))
	}

	todo, err := h.todoService.Update(c.Request().Context(), service.UpdateTodoParams{
		OwnerID:     userID,
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(req.Category),
		DueDate:     dueDate,
		Status:      model.Status(req.Status),
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, newDataResponse(todo))
}

// UpdateStatus changes only the status of an owned todo.
func (h *Todo) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, newErrorResponse("Todo not found"))
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid request body"))
	}

	todo, err := h.todoService.UpdateStatus(c.Request().Context(), userID, id, model.Status(req.Status))
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, newDataResponse(todo))
}

// Delete soft-deletes an owned todo; the row stays in storage.
func (h *Todo) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, newErrorResponse("Todo not found"))
	}

	todo, err := h.todoService.SoftDelete(c.Request().Context(), userID, id)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, newDataResponse(todo))
}

// Restore clears the soft-delete flag of an owned todo.
func (h *Todo) Restore(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, newErrorResponse("Todo not found"))
	}

	todo, err := h.todoService.Restore(c.Request().Context(), userID, id)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, newDataResponse(todo))
}

// parsePositiveInt parses page/limit params; anything unusable falls
// back to 0 so the service applies its defaults.
func parsePositiveInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// parseDueDate accepts RFC 3339 timestamps or plain dates. Empty input
// means no due date.
func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// parseStatuses resolves repeated status query params into a filter
// set. Unknown values are kept: they simply match nothing, so filtering
// on a bogus status returns an empty page rather than everything.
func parseStatuses(raw []string) []model.Status {
	var out []model.Status
	for _, v := range raw {
		if v != "" {
			out = append(out, model.Status(v))
		}
	}
	return out
}

func parseCategories(raw []string) []model.Category {
	var out []model.Category
	for _, v := range raw {
		if v != "" {
			out = append(out, model.Category(v))
		}
	}
	return out
}
