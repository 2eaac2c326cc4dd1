package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskloop/taskloop-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer wraps an echo instance with address and lifecycle methods.
type HTTPServer struct {
	echo *echo.Echo
	addr string
}

// NewHTTPServer creates an HTTPServer serving e on addr.
func NewHTTPServer(e *echo.Echo, addr string) *HTTPServer {
	return &HTTPServer{echo: e, addr: addr}
}

// Start blocks serving requests until Stop is called or the listener
// fails.
func (s *HTTPServer) Start() error {
	err := s.echo.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down, honoring ctx's deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
