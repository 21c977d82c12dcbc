package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// capture creates a debug-level logger writing into a buffer.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewTruncatingHandler(handler)), &buf
}

// TestTruncatingHandlerStrings tests string attribute truncation.
func TestTruncatingHandlerStrings(t *testing.T) {
	t.Parallel()

	t.Run("short strings pass through", func(t *testing.T) {
		t.Parallel()

		logger, buf := capture()
		logger.Debug("decode", "file", "board.fz")

		if !strings.Contains(buf.String(), "file=board.fz") {
			t.Errorf("short value was altered: %s", buf.String())
		}
	})

	t.Run("long strings are truncated", func(t *testing.T) {
		t.Parallel()

		logger, buf := capture()
		long := strings.Repeat("x", 500)
		logger.Debug("decode", "payload", long)

		out := buf.String()
		if strings.Contains(out, long) {
			t.Error("long value was not truncated")
		}
		if !strings.Contains(out, "(500 bytes)") {
			t.Errorf("missing length marker in: %s", out)
		}
	})
}

// TestTruncatingHandlerBytes tests that byte slices become hex prefixes.
func TestTruncatingHandlerBytes(t *testing.T) {
	t.Parallel()

	t.Run("small slices render fully", func(t *testing.T) {
		t.Parallel()

		logger, buf := capture()
		logger.Debug("decode", "magic", []byte{0x78, 0x9c})

		if !strings.Contains(buf.String(), "789c") {
			t.Errorf("expected hex rendering in: %s", buf.String())
		}
	})

	t.Run("large slices are bounded", func(t *testing.T) {
		t.Parallel()

		logger, buf := capture()
		logger.Debug("decode", "raw", make([]byte, 4096))

		out := buf.String()
		if !strings.Contains(out, "(4096 bytes)") {
			t.Errorf("missing length marker in: %s", out)
		}
		if len(out) > 512 {
			t.Errorf("record is too long (%d chars), truncation failed", len(out))
		}
	})
}

// TestTruncatingHandlerGroups tests recursion into grouped attributes.
func TestTruncatingHandlerGroups(t *testing.T) {
	t.Parallel()

	logger, buf := capture()
	logger.Debug("decode", slog.Group("container",
		slog.String("content", strings.Repeat("y", 200)),
		slog.String("variant", "fz"),
	))

	out := buf.String()
	if !strings.Contains(out, "(200 bytes)") {
		t.Errorf("grouped value was not truncated: %s", out)
	}
	if !strings.Contains(out, "variant=fz") {
		t.Errorf("grouped short value was altered: %s", out)
	}
}

// TestNew tests level selection.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default level hides debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, false)
		logger.Debug("hidden")
		logger.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("debug record logged at default level")
		}
		if !strings.Contains(out, "shown") {
			t.Error("warn record missing at default level")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, true)
		logger.Debug("shown")

		if !strings.Contains(buf.String(), "shown") {
			t.Error("debug record missing in verbose mode")
		}
	})
}

// TestNewJSON tests the JSON variant emits JSON.
func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSON(&buf, true)
	logger.Debug("decode", "file", "board.fz")

	if !strings.Contains(buf.String(), `"file":"board.fz"`) {
		t.Errorf("expected JSON output, got: %s", buf.String())
	}
}

// TestNewNop tests that the nop logger stays silent.
func TestNewNop(t *testing.T) {
	t.Parallel()

	NewNop().Error("discarded")
}
