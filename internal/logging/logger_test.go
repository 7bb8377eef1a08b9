package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numconv/matrix"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "json", slog.LevelDebug).
		WithPolicy(matrix.Checked).
		WithPair(matrix.Pair{Src: matrix.Uint16, Dst: matrix.Uint8})

	l.LogSweep(context.Background(), 3, 42, 0)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "sweep completed", rec["msg"])
	assert.Equal(t, "checked", rec["policy"])
	assert.Equal(t, "uint16", rec["src"])
	assert.Equal(t, "uint8", rec["dst"])
	assert.EqualValues(t, 42, rec["checks"])
}

func TestLogVerifyLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "text", slog.LevelInfo)

	l.LogVerify(context.Background(), 10, 100, nil)
	assert.Contains(t, buf.String(), "verification passed")

	buf.Reset()
	l.LogVerify(context.Background(), 10, 100, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.LogSweep(context.Background(), 1, 1, 0)
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopLogger().LogVerify(context.Background(), 1, 1, errors.New("ignored"))
	})
}
