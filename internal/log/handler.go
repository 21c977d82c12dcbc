package log

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
)

// MaxAttrLen is the longest attribute value the handler passes through
// unchanged. Longer string values and all byte slices are truncated to
// this many characters plus a length marker.
const MaxAttrLen = 64

// TruncatingHandler wraps an slog.Handler and shortens oversized
// attribute values before they reach the underlying handler. Byte
// slices are rendered as a hex prefix with the original length.
type TruncatingHandler struct {
	// handler is the underlying slog handler that receives truncated records.
	handler slog.Handler
}

// NewTruncatingHandler creates a TruncatingHandler wrapping the given
// handler. If handler is nil, slog.Default().Handler() is used.
func NewTruncatingHandler(handler slog.Handler) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TruncatingHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle truncates the record's attributes and passes it on.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	truncated := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		truncated.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, truncated)
}

// WithAttrs returns a new handler with the given attributes added,
// truncated first.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	truncated := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		truncated[i] = h.truncateAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(truncated)}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name)}
}

// truncateAttr shortens a single attribute, recursively handling groups.
func (h *TruncatingHandler) truncateAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		truncated := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			truncated[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(truncated...)}

	case slog.KindString:
		s := a.Value.String()
		if len(s) > MaxAttrLen {
			return slog.String(a.Key, fmt.Sprintf("%s... (%d bytes)", s[:MaxAttrLen], len(s)))
		}
		return a

	case slog.KindAny:
		if b, ok := a.Value.Any().([]byte); ok {
			return slog.String(a.Key, formatBytes(b))
		}
		return a

	default:
		return a
	}
}

// formatBytes renders a byte slice as a bounded hex prefix.
func formatBytes(b []byte) string {
	if len(b)*2 <= MaxAttrLen {
		return hex.EncodeToString(b)
	}
	return fmt.Sprintf("%s... (%d bytes)", hex.EncodeToString(b[:MaxAttrLen/2]), len(b))
}

// New creates a logger writing human-readable text to w. When verbose
// is true the level is Debug, otherwise Warn.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewTruncatingHandler(textHandler))
}

// NewJSON creates a logger writing JSON records to w. Useful for
// structured log aggregation.
func NewJSON(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	return slog.New(NewTruncatingHandler(jsonHandler))
}

// NewNop creates a logger that discards everything. Intended for tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
