package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("json with attrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := New(WithOutput(buf), WithFormat(FormatJSON), WithAttr(slog.String("svc", "ongkit")))
		log.Info("hello")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if entry["msg"] != "hello" || entry["svc"] != "ongkit" || entry["level"] != "INFO" {
			t.Fatalf("unexpected entry: %v", entry)
		}
	})

	t.Run("text respects level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := New(WithOutput(buf), WithLevel(slog.LevelWarn))
		log.Info("hidden")
		log.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") {
			t.Fatalf("unexpected output: %q", out)
		}
	})

	t.Run("unknown format ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		New(WithOutput(buf), WithFormat("xml")).Info("x")
		if !strings.Contains(buf.String(), "msg=x") {
			t.Fatalf("expected text output, got %q", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat("JSON"); err != nil || got != FormatJSON {
		t.Fatalf("ParseFormat(JSON) = %v, %v", got, err)
	}
	if got, err := ParseFormat(""); err != nil || got != FormatText {
		t.Fatalf("ParseFormat(\"\") = %v, %v", got, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
