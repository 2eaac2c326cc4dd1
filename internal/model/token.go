package model

import (
	"errors"

	"github.com/google/uuid"
)

// TokenManager issues and verifies signed identity tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)
