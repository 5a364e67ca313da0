// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupJSON sets slog's default logger to use JSON output at the given level.
func SetupJSON(level slog.Level) {
	setup(os.Stdout, level)
}

// SetupFile routes JSON logs to a size-rotated file. It is used by the
// terminal client, where stdout belongs to the UI. The returned closer
// flushes and closes the file.
func SetupFile(level slog.Level, path string) io.Closer {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	setup(w, level)

	return w
}

func setup(w io.Writer, level slog.Level) {
	logger := slog.New(
		slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
	)
	slog.SetDefault(logger)
}
