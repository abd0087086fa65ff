package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger on stdout. When logFile is set, records are
// also appended to that file. The returned func closes the file.
func New(level, logFile string) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	stdout := slog.NewJSONHandler(os.Stdout, opts)

	if logFile == "" {
		return slog.New(stdout), func() error { return nil }
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(stdout)
		logger.Error("failed to open log file, using stdout only", "error", err, "file", logFile)
		return logger, func() error { return nil }
	}

	logger := slog.New(slogmulti.Fanout(stdout, slog.NewJSONHandler(file, opts)))
	return logger, file.Close
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
