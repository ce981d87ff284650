package obj

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelDebug).WithName("cube.obj")

	logger.LogParse(Stats{Lines: 4, Positions: 3, Faces: 1}, nil)
	out := buf.String()
	assert.Contains(t, out, "msg=\"parse completed\"")
	assert.Contains(t, out, "name=cube.obj")
	assert.Contains(t, out, "positions=3")
	assert.Contains(t, out, "faces=1")
}

func TestNewTextLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelInfo)

	logger.LogParse(Stats{}, nil)
	assert.Empty(t, buf.String())

	logger.Info("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, slog.LevelDebug).WithName("cube.obj")

	logger.LogParse(Stats{Lines: 2}, errors.New("boom"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "parse failed", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "cube.obj", rec["name"])
	assert.Equal(t, float64(2), rec["lines"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNilWriterLoggers(t *testing.T) {
	assert.NotNil(t, NewTextLogger(nil, slog.LevelInfo).Logger)
	assert.NotNil(t, NewJSONLogger(nil, slog.LevelInfo).Logger)
}
