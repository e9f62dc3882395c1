// Package logging holds the process-wide structured logger.
//
// Records go to stderr as slog text and, when a log file is configured, to
// a size-rotated file as well. Each record carries the component that
// emitted it.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

//Component identifies the subsystem that logged a record
type Component string

//Components that log
const (
	ComponentCLI     Component = "cli"
	ComponentSession Component = "session"
	ComponentGPIO    Component = "gpio"
	ComponentConfig  Component = "config"
)

//Options configures Setup
type Options struct {
	Level slog.Level

	//File, when set, receives a copy of every record. It is rotated once
	//it grows past MaxSizeMB.
	File      string
	MaxSizeMB int
}

var (
	level  = new(slog.LevelVar)
	mu     sync.RWMutex
	logger *slog.Logger
	closer io.Closer
)

func init() {
	level.Set(slog.LevelWarn)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

//Setup replaces the default logger with one writing to w and, if
//opts.File is set, to a rotating log file. Close flushes the file.
func Setup(w io.Writer, opts Options) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}

	level.Set(opts.Level)
	handler := slog.Handler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: 3,
		}
		closer = file
		handler = fanout{handler, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})}
	}

	logger = slog.New(handler)
	return logger
}

//Close closes the log file opened by Setup, if any
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

//Logger the current logger
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

//Debug logs at debug level, tagged with c
func Debug(c Component, msg string, args ...any) {
	Logger().Debug(msg, append([]any{"component", string(c)}, args...)...)
}

//Info logs at info level, tagged with c
func Info(c Component, msg string, args ...any) {
	Logger().Info(msg, append([]any{"component", string(c)}, args...)...)
}

//Warn logs at warning level, tagged with c
func Warn(c Component, msg string, args ...any) {
	Logger().Warn(msg, append([]any{"component", string(c)}, args...)...)
}

//ParseLevel maps a config string onto a slog level. Unknown names are an
//error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// fanout sends every record to each handler in turn.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
