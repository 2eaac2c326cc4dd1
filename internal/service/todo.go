package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Todo implements the task lifecycle operations. Every operation acts
// on behalf of a single user; ownership is checked before any write.
type Todo struct {
	todoStore model.TodoStore
	logger    *logger.Logger
}

func NewTodo(todoStore model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{
		todoStore: todoStore,
		logger:    logger,
	}
}

// CreateTodoParams carries caller input for Create. Status empty means
// the default pending.
type CreateTodoParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Category    model.Category
	DueDate     *time.Time
	Status      model.Status
}

// UpdateTodoParams carries caller input for Update. All fields replace
// the stored values; Status empty leaves the stored status untouched.
type UpdateTodoParams struct {
	OwnerID     uuid.UUID
	ID          uuid.UUID
	Title       string
	Description string
	Category    model.Category
	DueDate     *time.Time
	Status      model.Status
}

// Create validates input and persists a new todo owned by the acting
// user. New todos are never soft-deleted.
func (s *Todo) Create(ctx context.Context, params CreateTodoParams) (model.Todo, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Todo{}, NewValidationError("title is required")
	}
	if !params.Category.Valid() {
		return model.Todo{}, NewValidationError("invalid category value")
	}

	status := params.Status
	if status == "" {
		status = model.StatusPending
	}
	if !status.Valid() {
		return model.Todo{}, NewValidationError("invalid status value")
	}

	now := time.Now()
	todo, err := s.todoStore.Create(ctx, model.Todo{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       title,
		Description: params.Description,
		Category:    params.Category,
		Status:      status,
		DueDate:     params.DueDate,
		IsDeleted:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error("Todo service: failed to create todo",
			"user_id", params.OwnerID,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("Todo service: todo created", "user_id", params.OwnerID, "todo_id", todo.ID)

	return todo, nil
}

// List executes a filtered, sorted, paginated listing and returns the
// page along with pagination metadata.
func (s *Todo) List(ctx context.Context, query model.ListQuery) ([]model.Todo, model.Pagination, error) {
	if query.Page < 1 {
		query.Page = defaultPage
	}
	if query.Limit < 1 {
		query.Limit = defaultLimit
	}
	if !query.SortBy.Valid() {
		query.SortBy = model.SortByCreatedAt
	}

	todos, total, err := s.todoStore.List(ctx, query)
	if err != nil {
		s.logger.Error("Todo service: failed to list todos",
			"user_id", query.OwnerID,
			"error", err.Error())
		return nil, model.Pagination{}, fmt.Errorf("failed to list todos: %w", err)
	}

	pagination := model.Pagination{
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
		Pages: (total + query.Limit - 1) / query.Limit,
	}

	return todos, pagination, nil
}

// Stats returns aggregate counts over all of the user's todos,
// ignoring filters and soft deletion.
func (s *Todo) Stats(ctx context.Context, ownerID uuid.UUID) (model.Stats, error) {
	stats, err := s.todoStore.Stats(ctx, ownerID)
	if err != nil {
		s.logger.Error("Todo service: failed to get stats",
			"user_id", ownerID,
			"error", err.Error())
		return model.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// Update replaces every mutable field of an owned todo; status is kept
// when the caller omits it.
func (s *Todo) Update(ctx context.Context, params UpdateTodoParams) (model.Todo, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Todo{}, NewValidationError("title is required")
	}
	if !params.Category.Valid() {
		return model.Todo{}, NewValidationError("invalid category value")
	}
	if params.Status != "" && !params.Status.Valid() {
		return model.Todo{}, NewValidationError("invalid status value")
	}

	todo, err := s.getOwned(ctx, params.OwnerID, params.ID)
	if err != nil {
		return model.Todo{}, err
	}

	todo.Title = title
	todo.Description = params.Description
	todo.Category = params.Category
	todo.DueDate = params.DueDate
	if params.Status != "" {
		todo.Status = params.Status
	}

	return s.save(ctx, todo)
}

// UpdateStatus changes only the status of an owned todo.
func (s *Todo) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status model.Status) (model.Todo, error) {
	if !status.Valid() {
		return model.Todo{}, NewValidationError("invalid status value")
	}

	todo, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return model.Todo{}, err
	}

	todo.Status = status

	return s.save(ctx, todo)
}

// SoftDelete marks an owned todo as deleted. The row stays in storage
// and can be restored.
func (s *Todo) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error) {
	todo, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return model.Todo{}, err
	}

	todo.IsDeleted = true

	return s.save(ctx, todo)
}

// Restore clears the soft-delete flag of an owned todo.
func (s *Todo) Restore(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error) {
	todo, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return model.Todo{}, err
	}

	todo.IsDeleted = false

	return s.save(ctx, todo)
}

// getOwned resolves a todo by id and verifies ownership. A todo owned
// by someone else fails with ErrNotAuthorized, matching the existing
// API contract.
func (s *Todo) getOwned(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	if todo.OwnerID != ownerID {
		return model.Todo{}, ErrNotAuthorized
	}

	return todo, nil
}

func (s *Todo) save(ctx context.Context, todo model.Todo) (model.Todo, error) {
	saved, err := s.todoStore.Update(ctx, todo)
	if err != nil {
		s.logger.Error("Todo service: failed to update todo",
			"user_id", todo.OwnerID,
			"todo_id", todo.ID,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return saved, nil
}
