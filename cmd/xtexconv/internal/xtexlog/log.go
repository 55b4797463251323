// Package xtexlog wires up the CLI's structured logger: a slog.Logger
// writing text to stderr by default, optionally tee'd to a rotating file
// via lumberjack when a log file path is configured.
package xtexlog

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger built by New.
type Options struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (case-insensitive);
	// unrecognized values fall back to INFO.
	Level string
	// FilePath, if non-empty, rotates logs through lumberjack in addition
	// to stderr.
	FilePath string
}

// New builds the default slog.Logger for the CLI and installs it via
// slog.SetDefault, returning it for direct use as well.
func New(opts Options) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(opts.Level))); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	if opts.FilePath != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
