package logger

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// NewHandler returns a charmbracelet handler writing timestamped, prefixed
// lines to stderr.
func NewHandler(name string) slog.Handler {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          name,
		Level:           log.InfoLevel,
	})
}

func New(name string) *slog.Logger {
	return slog.New(NewHandler(name))
}
