package router

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/taskloop/taskloop-server/internal/api/http/handler"
	"github.com/taskloop/taskloop-server/internal/api/http/middleware"
	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
)

// Pinger reports backing-store health for the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router wires handlers and middleware onto an echo instance.
type Router struct {
	authService handler.AuthService
	todoService handler.TodoService
	tokens      model.TokenManager
	store       Pinger
	corsOrigins []string
	logger      *logger.Logger
}

// New creates a Router over the given services.
func New(
	authService handler.AuthService,
	todoService handler.TodoService,
	tokens model.TokenManager,
	store Pinger,
	corsOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService: authService,
		todoService: todoService,
		tokens:      tokens,
		store:       store,
		corsOrigins: corsOrigins,
		logger:      logger,
	}
}

// Register builds the echo instance with all routes and middleware.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     r.corsOrigins,
		AllowCredentials: true,
	}))

	// Unhandled errors still leave with the JSON envelope instead of
	// echo's default body.
	e.HTTPErrorHandler = r.errorHandler

	authHandler := handler.NewAuth(r.authService, r.logger)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	authenticate := middleware.NewAuthenticate(r.tokens, r.logger)
	todoHandler := handler.NewTodo(r.todoService, r.logger)

	todos := e.Group("/todos", authenticate.RequireAuth)
	todos.GET("", todoHandler.List)
	todos.GET("/stats", todoHandler.Stats)
	todos.POST("", todoHandler.Create)
	todos.PUT("/:id", todoHandler.Update)
	todos.PATCH("/:id/status", todoHandler.UpdateStatus)
	todos.DELETE("/:id", todoHandler.Delete)
	todos.PATCH("/:id/restore", todoHandler.Restore)

	e.GET("/healthz", r.health)

	return e
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r *Router) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong!"
	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}
	if code == http.StatusInternalServerError {
		r.logger.Error("router: unhandled error", "path", c.Path(), "error", err.Error())
		message = "Something went wrong!"
	}

	if jsonErr := c.JSON(code, errorBody{Message: message}); jsonErr != nil {
		r.logger.Error("router: failed to write error response", "error", jsonErr.Error())
	}
}

func (r *Router) health(c echo.Context) error {
	if err := r.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Message: "store unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
