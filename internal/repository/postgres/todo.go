package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskloop/taskloop-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db *Connection
}

func NewTodoRepository(db *Connection) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO todos (id, user_id, title, description, category, status, due_date, is_deleted, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + todoColumns

	var saved model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.ID, todo.OwnerID, todo.Title, todo.Description,
		string(todo.Category), string(todo.Status), todo.DueDate, todo.IsDeleted,
		todo.CreatedAt, todo.UpdatedAt,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description,
		&saved.Category, &saved.Status, &saved.DueDate, &saved.IsDeleted,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return saved, nil
}

// CreateBatch inserts todos in a single round trip. Used by demo-task
// seeding on registration.
func (r *TodoRepository) CreateBatch(ctx context.Context, todos []model.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO todos (id, user_id, title, description, category, status, due_date, is_deleted, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	batch := &pgx.Batch{}
	for _, todo := range todos {
		batch.Queue(query,
			todo.ID, todo.OwnerID, todo.Title, todo.Description,
			string(todo.Category), string(todo.Status), todo.DueDate, todo.IsDeleted,
			todo.CreatedAt, todo.UpdatedAt,
		)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to create todo batch: %w", err)
	}

	return nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	var todo model.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description,
		&todo.Category, &todo.Status, &todo.DueDate, &todo.IsDeleted,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	return todo, nil
}

// Update overwrites every mutable column. The owner predicate keeps
// the write scoped even if the ownership check raced with another
// request.
func (r *TodoRepository) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `UPDATE todos
			  SET title = $3, description = $4, category = $5, status = $6, due_date = $7, is_deleted = $8, updated_at = NOW()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + todoColumns

	var saved model.Todo
	err := r.db.QueryRow(ctx, query,
		todo.ID, todo.OwnerID, todo.Title, todo.Description,
		string(todo.Category), string(todo.Status), todo.DueDate, todo.IsDeleted,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description,
		&saved.Category, &saved.Status, &saved.DueDate, &saved.IsDeleted,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return saved, nil
}

func (r *TodoRepository) List(ctx context.Context, query model.ListQuery) ([]model.Todo, int, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	listSQL, countSQL, listArgs, countArgs := buildListQuery(query)

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count todos: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		err := rows.Scan(
			&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description,
			&todo.Category, &todo.Status, &todo.DueDate, &todo.IsDeleted,
			&todo.CreatedAt, &todo.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read todos: %w", err)
	}

	return todos, total, nil
}

func (r *TodoRepository) Stats(ctx context.Context, ownerID uuid.UUID) (model.Stats, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `SELECT COUNT(*),
			         COUNT(*) FILTER (WHERE status = 'completed'),
			         COUNT(*) FILTER (WHERE status = 'pending'),
			         COUNT(*) FILTER (WHERE is_deleted)
			  FROM todos WHERE user_id = $1`

	var stats model.Stats
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&stats.Total, &stats.Completed, &stats.Pending, &stats.Deleted,
	)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to get todo stats: %w", err)
	}

	return stats, nil
}
