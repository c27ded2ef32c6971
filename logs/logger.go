// Package logs builds the structured logger used by the questc command.
package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

// Options selects where and how log records are written.
type Options struct {
	// Writer receives human-oriented records. Defaults to os.Stderr.
	Writer io.Writer
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string
	// Format is text or json for Writer. Empty means text.
	Format string
	// File, when set, additionally receives every record as JSON lines.
	File string
}

// Handler tags every record with the run ID of the current invocation.
type Handler struct {
	slog.Handler
	run string
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	record.Add("run", h.run)
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), run: h.run}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), run: h.run}
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// New returns a logger fanning out to the configured sinks, and a close
// function releasing the log file, if any.
func New(opts Options) (*slog.Logger, func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	level := new(slog.LevelVar)
	level.Set(lvl)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handlers = append(handlers, slog.NewTextHandler(w, handlerOpts))
	case "json":
		handlers = append(handlers, slog.NewJSONHandler(w, handlerOpts))
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closeFn = f.Close
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
		run:     uuid.NewString(),
	}), closeFn, nil
}
