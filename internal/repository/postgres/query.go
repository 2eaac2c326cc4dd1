package postgres

import (
	"fmt"
	"strings"

	"github.com/taskloop/taskloop-server/internal/model"
)

const todoColumns = `id, user_id, title, description, category, status, due_date, is_deleted, created_at, updated_at`

var sortColumns = map[model.SortField]string{
	model.SortByCreatedAt: "created_at",
	model.SortByTitle:     "title",
	model.SortByDueDate:   "due_date",
	model.SortByCategory:  "category",
}

// buildListQuery renders q into a page SELECT and a COUNT over the same
// predicate. The count query uses the argument list without the
// trailing limit/offset pair.
func buildListQuery(q model.ListQuery) (listSQL string, countSQL string, listArgs []any, countArgs []any) {
	var where []string
	var args []any

	args = append(args, q.OwnerID)
	where = append(where, fmt.Sprintf("user_id = $%d", len(args)))

	if len(q.Statuses) > 0 {
		args = append(args, statusStrings(q.Statuses))
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if len(q.Categories) > 0 {
		args = append(args, categoryStrings(q.Categories))
		where = append(where, fmt.Sprintf("category = ANY($%d)", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if !q.ShowDeleted {
		where = append(where, "is_deleted = FALSE")
	}

	cond := strings.Join(where, " AND ")
	countSQL = "SELECT COUNT(*) FROM todos WHERE " + cond
	countArgs = args

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}

	// Tie-break on id so identical inputs page through identical data
	// in a stable order.
	listArgs = append(append([]any{}, args...), q.Limit, q.Offset())
	listSQL = fmt.Sprintf(
		"SELECT %s FROM todos WHERE %s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d",
		todoColumns, cond, column, dir, dir, len(listArgs)-1, len(listArgs),
	)

	return listSQL, countSQL, listArgs, countArgs
}

// escapeLike escapes LIKE metacharacters so user input matches
// literally inside the pattern.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func statusStrings(statuses []model.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func categoryStrings(categories []model.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}
