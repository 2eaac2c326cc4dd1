package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/service"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
}

// Auth handles the /auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns a session token.
func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid request body"))
	}

	h.logger.Debug("Auth handler: processing registration request", "email", req.Email)

	session, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, h.logger, err)
	}

	h.logger.Info("Auth handler: registration completed", "email", req.Email)

	return c.JSON(http.StatusCreated, sessionResponse{
		Success: true,
		Token:   session.Token,
		User:    session.User,
	})
}

// Login authenticates an existing account and returns a session token.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, newErrorResponse("invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, newErrorResponse("Please provide email and password"))
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, h.logger, err)
	}

	h.logger.Info("Auth handler: login completed", "email", req.Email)

	return c.JSON(http.StatusOK, sessionResponse{
		Success: true,
		Token:   session.Token,
		User:    session.User,
	})
}
