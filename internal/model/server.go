package model

import "context"

// Server is a network server with a managed lifecycle.
type Server interface {
	Start() error
	Stop(ctx context.Context) error
	Address() string
}
