package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
)

// TodoSeeder is an optional post-registration hook that populates a
// fresh account with example tasks.
type TodoSeeder interface {
	SeedUser(ctx context.Context, userID uuid.UUID) error
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	User  model.PublicUser
}

// Auth implements registration and login on top of the user store and
// the token manager.
type Auth struct {
	userStore model.UserStore
	tokens    model.TokenManager
	seeder    TodoSeeder
	logger    *logger.Logger
}

// NewAuth creates an Auth service. seeder may be nil to disable
// demo-task seeding.
func NewAuth(
	userStore model.UserStore,
	tokens model.TokenManager,
	seeder TodoSeeder,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		seeder:    seeder,
		logger:    logger,
	}
}

// Register creates a new user with a bcrypt-hashed password and issues
// a session token. Email comparison is case-insensitive.
func (a *Auth) Register(ctx context.Context, name, email, password string) (Session, error) {
	a.logger.Debug("Auth service: starting user registration", "email", email)

	name = strings.TrimSpace(name)
	email = foldEmail(email)
	if name == "" || email == "" || password == "" {
		return Session{}, NewValidationError("name, email and password are required")
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return Session{}, ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Two registrations can race past the GetByEmail check; the
		// unique index on email catches the loser.
		if errors.Is(err, model.ErrDuplicate) {
			a.logger.Info("Auth service: email already registered", "email", email)
			return Session{}, ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	signed, err := a.tokens.Generate(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	// Seeding is a convenience feature; a failure here must not undo a
	// completed registration.
	if a.seeder != nil {
		if err := a.seeder.SeedUser(ctx, user.ID); err != nil {
			a.logger.Error("Auth service: failed to seed demo tasks",
				"user_id", user.ID,
				"error", err.Error())
		}
	}

	a.logger.Info("Auth service: user registration completed", "email", email, "user_id", user.ID)

	return Session{Token: signed, User: user.Public()}, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are deliberately indistinguishable.
func (a *Auth) Login(ctx context.Context, email, password string) (Session, error) {
	a.logger.Debug("Auth service: starting user login", "email", email)

	email = foldEmail(email)
	if email == "" || password == "" {
		return Session{}, NewValidationError("email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	signed, err := a.tokens.Generate(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user login completed", "email", email, "user_id", user.ID)

	return Session{Token: signed, User: user.Public()}, nil
}

func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
