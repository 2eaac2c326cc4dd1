package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
	"github.com/taskloop/taskloop-server/internal/service"
)

// handleError maps service failures to HTTP responses. Business-rule
// violations keep their message; anything unexpected is logged and
// returned as a generic 500 so internals never leak.
func handleError(c echo.Context, log *logger.Logger, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, newErrorResponse(verr.Message))
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, newErrorResponse("Email already registered"))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Invalid credentials"))
	case errors.Is(err, service.ErrNotAuthorized):
		return c.JSON(http.StatusUnauthorized, newErrorResponse("Not authorized"))
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, newErrorResponse("Todo not found"))
	default:
		log.Error("handler: unexpected error",
			"path", c.Path(),
			"error", err.Error())
		return c.JSON(http.StatusInternalServerError, newErrorResponse("Something went wrong!"))
	}
}
