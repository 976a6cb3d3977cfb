// Package logging builds the process-wide slog.Logger shared by the API
// server and the admin CLI.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for LOG_FILE.
const (
	maxSizeMB  = 10
	maxBackups = 7
	maxAgeDays = 7
)

// New returns a JSON logger writing to stdout at the given level. When file
// is non-empty the same stream is also written to a rotating file. The
// returned io.Closer releases that file and must be closed on shutdown.
//
// An unrecognised level falls back to info.
func New(stdout io.Writer, level, file string) (*slog.Logger, io.Closer) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	var closer io.Closer = nopCloser{}
	out := stdout
	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(stdout, rotator)
		closer = rotator
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
