package server

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer(t *testing.T) {
	e := echo.New()
	s := NewHTTPServer(e, ":5000")

	require.NotNil(t, s)
	assert.Equal(t, e, s.echo)
	assert.Equal(t, ":5000", s.Address())
}

func TestHTTPServer_StartStop(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := NewHTTPServer(e, "127.0.0.1:0")

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()

	// Give the listener a moment to come up before shutting down.
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
