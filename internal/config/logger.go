package config

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger builds the process logger. Every record carries a session id so
// interleaved sessions can be told apart.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}
