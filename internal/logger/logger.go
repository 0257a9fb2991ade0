package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	level  string
	format string
}

// New creates a Logger writing to stdout.
func New(level, format string) Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level, format string) Logger {
	format = strings.ToLower(format)
	if format != FormatJSON {
		format = FormatText
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		out:    w,
		level:  strings.ToLower(level),
		format: format,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args...)
}

func (l *implLogger) write(ctx context.Context, level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := fmt.Sprintf(msg, args...)
	runID := RunID(ctx)

	if l.format == FormatJSON {
		entry := jsonEntry{
			Time:  time.Now().UTC().Format(time.RFC3339Nano),
			Level: level,
			RunID: runID,
			Msg:   text,
		}
		data, err := json.Marshal(entry)
		if err != nil {
			l.logger.Printf("[ERROR] marshal log entry: %v", err)
			return
		}
		data = append(data, '\n')
		_, _ = l.out.Write(data)
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if runID != "" {
		prefix += "[run=" + runID + "] "
	}
	l.logger.Print(prefix + text)
}

type jsonEntry struct {
	Time  string `json:"time"`
	Level string `json:"level"`
	RunID string `json:"run_id,omitempty"`
	Msg   string `json:"msg"`
}
