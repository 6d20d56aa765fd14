package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufferedLogger()
	ctx := context.Background()

	log.Info(ctx, "info message", "k", "v")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "k=v")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferedLogger()

	child := log.With("slice", "rentals")
	child.Info(context.Background(), "persisted")

	require.Contains(t, buf.String(), "slice=rentals")
}

func TestNop_DoesNothing(t *testing.T) {
	log := Nop()
	log.Info(context.Background(), "ignored")
	log.With("a", 1).Error(context.Background(), "also ignored")
}
