package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
)

// seedTasks is the fixed pool of example tasks a new account is seeded
// with. Category, status and due date are randomized per user.
var seedTasks = []struct {
	title       string
	description string
}{
	{"Complete project documentation", "Make sure to include all necessary sections and examples"},
	{"Schedule team meeting", "Coordinate with team members for availability"},
	{"Review pull requests", "Check for any potential issues or improvements"},
	{"Update project dependencies", "Update to latest stable versions"},
	{"Prepare presentation slides", "Include key points and visual aids"},
	{"Grocery shopping", "Don't forget to buy fruits and vegetables"},
	{"Pay monthly bills", "Set up automatic payments if possible"},
	{"Call family members", "Catch up with family members"},
	{"Book doctor appointment", "Check for available slots next week"},
	{"Exercise routine", "30 minutes of cardio and strength training"},
	{"Read new book", "Read at least 50 pages"},
	{"Plan weekend trip", "Research destinations and activities"},
	{"Clean the house", "Focus on kitchen and bathroom"},
	{"Organize workspace", "Declutter and organize files"},
	{"Update resume", "Add recent projects and achievements"},
	{"Learn new skill", "Dedicate 1 hour daily to learning"},
	{"Write blog post", "Write about recent project experience"},
	{"Backup important files", "Use cloud storage for important documents"},
	{"Plan birthday party", "Send out invitations and plan activities"},
	{"Renew subscriptions", "Check all active subscriptions"},
}

// Seeder populates a freshly registered account with demo tasks. It is
// wired into the auth service as an optional post-registration hook.
type Seeder struct {
	todoStore model.TodoStore
	count     int
	logger    *logger.Logger
}

var _ TodoSeeder = (*Seeder)(nil)

// NewSeeder creates a Seeder inserting up to count demo tasks per new
// user, capped at the size of the task pool.
func NewSeeder(todoStore model.TodoStore, count int, logger *logger.Logger) *Seeder {
	if count < 0 || count > len(seedTasks) {
		count = len(seedTasks)
	}
	return &Seeder{
		todoStore: todoStore,
		count:     count,
		logger:    logger,
	}
}

// SeedUser inserts the demo tasks for userID in a single batch.
func (s *Seeder) SeedUser(ctx context.Context, userID uuid.UUID) error {
	categories := model.Categories()
	statuses := model.Statuses()
	now := time.Now()

	todos := make([]model.Todo, 0, s.count)
	for i := 0; i < s.count; i++ {
		due := now.AddDate(0, 0, rand.IntN(30))
		todos = append(todos, model.Todo{
			ID:          uuid.New(),
			OwnerID:     userID,
			Title:       seedTasks[i].title,
			Description: seedTasks[i].description,
			Category:    categories[rand.IntN(len(categories))],
			Status:      statuses[rand.IntN(len(statuses))],
			DueDate:     &due,
			IsDeleted:   false,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.todoStore.CreateBatch(ctx, todos); err != nil {
		return fmt.Errorf("failed to seed demo tasks: %w", err)
	}

	s.logger.Info("Seeder: demo tasks created", "user_id", userID, "count", len(todos))

	return nil
}
