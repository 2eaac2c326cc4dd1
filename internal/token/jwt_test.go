package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskloop/taskloop-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	signed, err := j.Generate(u)
	require.NoError(t, err)
	got, err := j.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", -time.Minute)
	u := uuid.New()

	signed, err := j.Generate(u)
	require.NoError(t, err)

	_, err = j.Parse(signed)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_WrongSecret(t *testing.T) {
	u := uuid.New()

	signed, err := NewJWT("secret", time.Hour).Generate(u)
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).Parse(signed)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_Garbage(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	_, err := j.Parse("not-a-token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}
