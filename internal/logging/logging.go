// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides the application logger: leveled JSON lines to
// stderr, optionally duplicated to a rotating log file. The core packages
// return typed errors; logging happens at the command layer.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/meshint/paperdesk/pkg/types"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a config string to a Level. Unknown values fall back to
// info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// Logger writes leveled JSON-line log entries.
type Logger struct {
	name   string
	level  Level
	writer io.Writer
}

// New builds a Logger from config. With cfg.File set, entries go to both
// stderr and a size-rotated file.
func New(cfg types.LogConfig) *Logger {
	writers := []io.Writer{os.Stderr}

	if cfg.File != "" {
		maxSize := cfg.Rotation.MaxSize
		if maxSize <= 0 {
			maxSize = 10
		}
		maxBackups := cfg.Rotation.MaxBackups
		if maxBackups <= 0 {
			maxBackups = 3
		}
		maxAge := cfg.Rotation.MaxAge
		if maxAge <= 0 {
			maxAge = 28
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
			Compress:   cfg.Rotation.Compress,
		})
	}

	return &Logger{
		level:  ParseLevel(cfg.Level),
		writer: io.MultiWriter(writers...),
	}
}

// Named returns a logger that tags entries with a component name.
func (l *Logger) Named(name string) *Logger {
	full := name
	if l.name != "" {
		full = l.name + "/" + name
	}
	return &Logger{name: full, level: l.level, writer: l.writer}
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Component: l.name,
		Message:   fmt.Sprintf(msg, args...),
	}
	data, _ := json.Marshal(e)
	fmt.Fprintf(l.writer, "%s\n", data)
}

// Debug logs at debug level with Printf formatting.
func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }

// Info logs at info level with Printf formatting.
func (l *Logger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args...) }

// Warn logs at warn level with Printf formatting.
func (l *Logger) Warn(msg string, args ...any) { l.log(LevelWarn, msg, args...) }

// Error logs at error level with Printf formatting.
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }
