// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides component-scoped slog loggers that share one
// process-wide handler. Packages declare `var logger = logging.Logger("name")`
// at init time; Configure may swap the handler later and existing loggers
// follow it.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var current atomic.Pointer[slog.Handler]

func init() {
	var h slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	current.Store(&h)
}

// Logger returns a logger tagged with component.
func Logger(component string) *slog.Logger {
	return slog.New(swapHandler{}).With(slog.String("component", component))
}

// Configure installs a handler writing to w. level is debug, info, warn or
// error; format is text or json. Empty values keep the defaults (warn, text).
func Configure(w io.Writer, level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unsupported log format %q: use text or json", format)
	}
	current.Store(&h)
	return nil
}

// Discard silences all loggers. Tests call it from init.
func Discard() {
	var h slog.Handler = slog.NewTextHandler(io.Discard, nil)
	current.Store(&h)
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q: use debug, info, warn, or error", level)
	}
}

// swapHandler forwards to the current process-wide handler, re-applying any
// attributes and groups collected through WithAttrs/WithGroup.
type swapHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (s swapHandler) resolve() slog.Handler {
	h := *current.Load()
	for _, op := range s.ops {
		h = op(h)
	}
	return h
}

func (s swapHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return (*current.Load()).Enabled(ctx, l)
}

func (s swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return s.resolve().Handle(ctx, r)
}

func (s swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return s.with(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (s swapHandler) WithGroup(name string) slog.Handler {
	return s.with(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (s swapHandler) with(op func(slog.Handler) slog.Handler) swapHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(s.ops), len(s.ops)+1)
	copy(ops, s.ops)
	return swapHandler{ops: append(ops, op)}
}
