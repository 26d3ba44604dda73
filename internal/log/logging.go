// Package log builds the configured slog.Logger for gcnput.
//
// Without a log file, records below error go to stdout and errors to
// stderr so that host frontends can redirect the two independently.
// A raw logger is available for hexdumping adapter reports at trace
// level without paying the slog formatting cost per report.
package log

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelTrace is a custom slog level below Debug for per-report output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger builds a slog.Logger with console and optional file
// handlers. color controls ANSI escapes on the console handlers.
func SetupLogger(logLevel, logFile string, color bool) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)

	var handlers []slog.Handler
	if logFile == "" {
		out := &consoleHandler{w: os.Stdout, level: level, color: color}
		handlers = append(handlers, levelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: out})

		errOut := &consoleHandler{w: os.Stderr, level: slog.LevelError, color: color}
		handlers = append(handlers, levelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: errOut})
	} else {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	var closers []io.Closer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(multiHandler{hs: handlers})
	slog.SetDefault(logger)
	return logger, closers, nil
}

// RawLogger writes raw adapter reports as hexdumps. Implementations
// must tolerate concurrent use; a nil-backed RawLogger discards.
type RawLogger interface {
	Report(tag string, b []byte)
}

// NewRaw returns a RawLogger writing to w, or a discarding one if w
// is nil.
func NewRaw(w io.Writer) RawLogger {
	if w == nil {
		return discardRaw{}
	}
	return &rawWriter{w: w}
}

type discardRaw struct{}

func (discardRaw) Report(string, []byte) {}

type rawWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *rawWriter) Report(tag string, b []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s %s\n", tag, hex.EncodeToString(b))
}

// multiHandler fans out records to multiple handlers.
type multiHandler struct{ hs []slog.Handler }

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return multiHandler{hs: out}
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return multiHandler{hs: out}
}

// levelFilter delegates to an underlying handler for the levels its
// predicate accepts.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

type consoleHandler struct {
	w     io.Writer
	level slog.Leveler
	color bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func levelName(l slog.Level) string {
	if l == LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	if h.color {
		buf.WriteString("\033[90m")
	}
	buf.WriteString(r.Time.Format("15:04:05.000"))
	if h.color {
		buf.WriteString("\033[0m")
	}
	buf.WriteString(" ")

	if h.color {
		switch {
		case r.Level >= slog.LevelError:
			buf.WriteString("\033[31m")
		case r.Level >= slog.LevelWarn:
			buf.WriteString("\033[33m")
		case r.Level >= slog.LevelInfo:
			buf.WriteString("\033[32m")
		case r.Level >= slog.LevelDebug:
			buf.WriteString("\033[34m")
		default:
			buf.WriteString("\033[35m")
		}
	}
	fmt.Fprintf(&buf, "%5s", levelName(r.Level))
	if h.color {
		buf.WriteString("\033[0m")
	}

	buf.WriteString(" ")
	buf.WriteString(r.Message)

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(" ")
		buf.WriteString(a.Key)
		buf.WriteString("=")
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *consoleHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(string) slog.Handler { return h }
