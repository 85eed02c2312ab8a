package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{
		ServiceName: "afroman-api",
		Level:       zerolog.InfoLevel,
		Output:      &buf,
	})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithDeviceID(ctx, "device-abc")
	logg.Info(ctx, "request.start")

	out := buf.String()
	for _, want := range []string{`"service":"afroman-api"`, `"request_id":"req-123"`, `"device_id":"device-abc"`, "request.start"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %q, got %s", want, out)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{
		ServiceName: "afroman-api",
		Level:       zerolog.WarnLevel,
		Output:      &buf,
	})

	logg.Info(context.Background(), "should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %s", buf.String())
	}

	logg.Warn(context.Background(), "should be kept")
	if !strings.Contains(buf.String(), "should be kept") {
		t.Fatalf("expected warn output, got %s", buf.String())
	}
}

func TestLoggerErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{
		ServiceName: "afroman-api",
		Level:       zerolog.InfoLevel,
		Output:      &buf,
	})

	logg.Error(context.Background(), "boom", errors.New("db down"))

	out := buf.String()
	if !strings.Contains(out, `"error":"db down"`) {
		t.Fatalf("expected error field, got %s", out)
	}
	if !strings.Contains(out, `"stack"`) {
		t.Fatalf("expected stack field, got %s", out)
	}
}

func TestWithFieldsAccumulates(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{
		ServiceName: "afroman-api",
		Level:       zerolog.InfoLevel,
		Output:      &buf,
	})

	ctx := logg.WithFields(context.Background(), map[string]any{
		"slot":   "cart",
		"device": "device-abc",
	})
	logg.Info(ctx, "slot.persisted")

	out := buf.String()
	if !strings.Contains(out, `"slot":"cart"`) || !strings.Contains(out, `"device":"device-abc"`) {
		t.Fatalf("expected both fields, got %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: " WARN ", want: zerolog.WarnLevel},
		{input: "", want: zerolog.InfoLevel},
		{input: "not-a-level", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
