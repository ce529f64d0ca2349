package application

import (
	"io"
	"log/slog"

	"fintrack/internal/log"
)

func newTestLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}
