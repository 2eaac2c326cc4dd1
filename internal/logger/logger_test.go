package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelInfo))

	l.Debug("below threshold")
	l.Info("visible", "key", "value")

	assert.NotContains(t, buf.String(), "below threshold")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "key=value")
}
