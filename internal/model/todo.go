package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status is the progress state of a todo.
type Status string

// Category is the user-facing grouping of a todo.
type Category string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Statuses lists every valid status value.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryOther}
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

// Todo represents a task owned by a single user. OwnerID is immutable
// after creation. IsDeleted marks soft deletion; rows are never purged.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"user"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsDeleted   bool       `json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SortField names a column todos may be ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByTitle     SortField = "title"
	SortByDueDate   SortField = "dueDate"
	SortByCategory  SortField = "category"
)

// Valid reports whether f is a sortable field.
func (f SortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByTitle, SortByDueDate, SortByCategory:
		return true
	}
	return false
}

// ListQuery carries the resolved filter, sort and pagination parameters
// for a todo listing. Statuses and Categories are filter sets: empty
// means no restriction, one or more values restrict to membership.
type ListQuery struct {
	OwnerID     uuid.UUID
	Statuses    []Status
	Categories  []Category
	Search      string
	ShowDeleted bool
	SortBy      SortField
	Descending  bool
	Page        int
	Limit       int
}

// Offset returns the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination describes the page returned by a listing together with
// the total match count ignoring pagination.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Stats aggregates counts over all of a user's todos.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Deleted   int `json:"deleted"`
}

// TodoStore defines persistence operations for todos.
type TodoStore interface {
	Create(ctx context.Context, todo Todo) (Todo, error)
	CreateBatch(ctx context.Context, todos []Todo) error
	GetByID(ctx context.Context, id uuid.UUID) (Todo, error)
	Update(ctx context.Context, todo Todo) (Todo, error)
	List(ctx context.Context, query ListQuery) ([]Todo, int, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error)
}
