package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskloop/taskloop-server/internal/logger"
	"github.com/taskloop/taskloop-server/internal/model"
)

// userIDKey is the echo context key carrying the authenticated user ID.
const userIDKey = "user_id"

type unauthorizedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context. The token is the sole source of identity; handlers
// never read a user ID from the request itself.
type Authenticate struct {
	tokens model.TokenManager
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.TokenManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// RequireAuth rejects requests without a valid Authorization bearer
// token and stores the token's user ID for downstream handlers.
func (m *Authenticate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			return c.JSON(http.StatusUnauthorized, unauthorizedResponse{Message: "Not authorized to access this route"})
		}

		userID, err := m.tokens.Parse(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected", "error", err.Error())
			return c.JSON(http.StatusUnauthorized, unauthorizedResponse{Message: "Not authorized to access this route"})
		}

		c.Set(userIDKey, userID)

		return next(c)
	}
}

// UserID retrieves the authenticated user ID stored by RequireAuth.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
