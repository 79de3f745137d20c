// Package logging builds the zerolog logger shared by the host and simulation.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Level string
	// Dir receives a per-session log file. Empty disables the file.
	Dir string
	// Console defaults to os.Stdout.
	Console io.Writer
	NoColor bool
}

// Session is the output of New: the logger plus the resources behind it.
type Session struct {
	ID     uuid.UUID
	Logger zerolog.Logger
	// Path is the log file, empty when no file was opened.
	Path string

	file *os.File
}

// Close flushes and closes the log file, if any.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// ParseLevel maps a config string to a level. Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New writes colored console output and, when Dir is set, plain JSON lines to
// <Dir>/stationdrive.<timestamp>.log. Every line carries the session id.
func New(opts Options) (*Session, error) {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	s := &Session{ID: uuid.New()}
	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		},
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create logs dir: %w", err)
		}
		name := fmt.Sprintf("stationdrive.%s.log", time.Now().UTC().Format("20060102_150405"))
		s.Path = filepath.Join(opts.Dir, name)
		f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.file = f
		writers = append(writers, f)
	}

	level := ParseLevel(opts.Level)
	s.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("session", s.ID.String()).
		Logger()

	s.Logger.Info().Str("loglevel", level.String()).Str("file", s.Path).Msg("Logging set up")
	return s, nil
}
