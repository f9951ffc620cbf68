package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger construction options.
type Config struct {
	Level  string // debug, info, warn, error
	File   string // optional log file path
	Stderr io.Writer
}

// New builds the process logger. Interactive stderr gets the pretty console
// writer; pipes get plain JSON lines. Every invocation is tagged with a
// fresh id so overlapping runs can be told apart in a shared log file.
func New(cfg Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var writers []io.Writer
	if f, ok := stderr.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		writers = append(writers, zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen})
	} else {
		writers = append(writers, stderr)
	}

	closeFn := func() {}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = func() { _ = f.Close() }
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}

	log := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("invocation_id", uuid.NewString()).
		Logger()
	return log, closeFn, nil
}
