package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const logExt = ".log"

// Options controls where and how much a run logs.
type Options struct {
	Enabled       bool
	Level         string
	RetentionDays int
	// Dir overrides the log directory; empty means ~/.show-scout/logs.
	Dir string
	// Command and Args are recorded in the first entry of the run.
	Command string
	Args    []string
}

// Session is the logger for one run together with the file backing it.
type Session struct {
	Logger zerolog.Logger
	Path   string
	file   io.Closer
}

// Close flushes and closes the log file. It is safe on a disabled session.
func (s *Session) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	s.Logger.Debug().Msg("session ended")
	err := s.file.Close()
	s.file = nil
	return err
}

// Initialize sets up the logging system with the given configuration. Logs
// older than the retention window are removed before the new file is opened.
// A disabled configuration yields a no-op logger.
func Initialize(opts Options) (*Session, error) {
	if !opts.Enabled {
		return &Session{Logger: zerolog.Nop()}, nil
	}

	level := zerolog.InfoLevel
	var levelErr error
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			levelErr = err
		} else {
			level = parsed
		}
	}

	dir := opts.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	removed, cleanupErr := cleanupOldLogs(dir, opts.RetentionDays, time.Now())

	path := GetLogPath(dir, time.Now())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	logger.Info().
		Str("command", opts.Command).
		Strs("args", opts.Args).
		Str("log_level", level.String()).
		Msg("session started")
	if levelErr != nil {
		logger.Warn().Str("invalid_level", opts.Level).Msg("Invalid log level, using default 'info'")
	}
	if cleanupErr != nil {
		logger.Warn().Err(cleanupErr).Msg("failed to clean up old logs")
	} else if removed > 0 {
		logger.Debug().Int("removed", removed).Msg("cleaned up old logs")
	}

	return &Session{Logger: logger, Path: path, file: f}, nil
}

// LogDir returns the default log directory.
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".show-scout", "logs"), nil
}

// GetLogPath names the log file for a run started at now.
func GetLogPath(dir string, now time.Time) string {
	filename := fmt.Sprintf("%s.%03d%s",
		now.Format("2006-01-02_150405"),
		now.Nanosecond()/1000000,
		logExt)
	return filepath.Join(dir, filename)
}

// cleanupOldLogs removes log files last modified before the retention window
// and reports how many were deleted. Files it cannot remove are skipped.
func cleanupOldLogs(dir string, retentionDays int, now time.Time) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list log files: %w", err)
	}

	cutoff := now.AddDate(0, 0, -retentionDays)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), logExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				continue
			}
			removed++
		}
	}
	return removed, nil
}
