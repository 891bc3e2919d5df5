package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// MaxValueLen is the number of runes kept from a long string attribute.
const MaxValueLen = 200

// ClipMarker is appended to a clipped value.
const ClipMarker = "...(clipped)"

// ClipHandler wraps an slog.Handler and clips string attribute values longer
// than a limit. Groups are clipped recursively.
type ClipHandler struct {
	handler slog.Handler
	limit   int
}

// NewClipHandler creates a ClipHandler wrapping the given handler.
// A non-positive limit uses MaxValueLen. If handler is nil,
// slog.Default().Handler() is used.
func NewClipHandler(handler slog.Handler, limit int) *ClipHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if limit <= 0 {
		limit = MaxValueLen
	}
	return &ClipHandler{handler: handler, limit: limit}
}

// Enabled delegates to the underlying handler.
func (h *ClipHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it on.
func (h *ClipHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes clipped and added.
func (h *ClipHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clipped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clipped[i] = h.clipAttr(a)
	}
	return &ClipHandler{handler: h.handler.WithAttrs(clipped), limit: h.limit}
}

// WithGroup returns a new handler with the given group name.
func (h *ClipHandler) WithGroup(name string) slog.Handler {
	return &ClipHandler{handler: h.handler.WithGroup(name), limit: h.limit}
}

func (h *ClipHandler) clipAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clipped := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			clipped[i] = h.clipAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clipped...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, clip(a.Value.String(), h.limit))
	}
	return a
}

// clip shortens s to limit runes followed by ClipMarker.
func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + ClipMarker
}

// level returns Debug when verbose, otherwise Warn.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text logger writing to w.
// If verbose is true the level is Debug; otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewClipHandler(slog.NewTextHandler(w, opts), MaxValueLen))
}

// NewJSONLogger creates a JSON logger writing to w, with the same level
// rules as NewLogger.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewClipHandler(slog.NewJSONHandler(w, opts), MaxValueLen))
}
