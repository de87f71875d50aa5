package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/pushflow/errors"
)

func newBuffered(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithWriter(&Config{Level: level, Format: "json"}, "test", &buf), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("failed to decode %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Name() != "test-svc" {
		t.Errorf("expected name 'test-svc', got %q", l.Name())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l, buf := newBuffered("invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("expected invalid level to fall back to info")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected info message to be written")
	}
}

func TestLevelIsPerLogger(t *testing.T) {
	quiet, quietBuf := newBuffered("error")
	loud, loudBuf := newBuffered("debug")

	quiet.Info("quiet info")
	loud.Debug("loud debug")

	if quietBuf.Len() != 0 {
		t.Errorf("expected nothing from error-level logger, got %q", quietBuf.String())
	}
	if !strings.Contains(loudBuf.String(), "loud debug") {
		t.Error("expected debug message from debug-level logger")
	}
	if quiet.DebugEnabled() {
		t.Error("expected DebugEnabled false at error level")
	}
	if !loud.DebugEnabled() {
		t.Error("expected DebugEnabled true at debug level")
	}
}

func TestScopedFields(t *testing.T) {
	l, buf := newBuffered("debug")
	l.WithComponent("observe").WithPipeline("teams").WithStage("names").
		Info("run done", Fields(FieldRunID, "r-1", FieldCount, 3))

	entry := lastEntry(t, buf)
	want := map[string]any{
		FieldComponent: "observe",
		FieldPipeline:  "teams",
		FieldStage:     "names",
		FieldRunID:     "r-1",
		FieldCount:     float64(3),
		"message":      "run done",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("field %s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestWithFields(t *testing.T) {
	l, buf := newBuffered("info")
	l.WithFields(map[string]any{"key": "value"}).Warn("careful")
	if got := lastEntry(t, buf)["key"]; got != "value" {
		t.Errorf("got %v, want value", got)
	}
}

func TestWithError(t *testing.T) {
	l, buf := newBuffered("info")
	err := errors.New(errors.ErrCodeInternal, "boom")
	l.WithError(err).Error("failed")
	if got := lastEntry(t, buf)[FieldError]; got != err.Error() {
		t.Errorf("got %v, want %q", got, err.Error())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	if l.DebugEnabled() {
		t.Error("nop logger must not report debug enabled")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "skipped", "dangling")
	if len(m) != 2 || m["a"] != 1 || m["b"] != "two" {
		t.Errorf("got %v, want map[a:1 b:two]", m)
	}
}

func TestWithDuration(t *testing.T) {
	m := WithDuration(nil, 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("got %v, want 1500", m[FieldDuration])
	}
	m = WithDuration(Fields("x", 1), time.Second)
	if m["x"] != 1 || m[FieldDuration] != int64(1000) {
		t.Errorf("expected existing fields to be kept, got %v", m)
	}
}

func TestGlobal(t *testing.T) {
	l := NewDefault("custom")
	SetGlobal(l)
	if Global() != l {
		t.Error("expected Global to return the logger set with SetGlobal")
	}
	Init(Config{Format: "json"})
	if Global() == l {
		t.Error("expected Init to replace the global logger")
	}
}

func TestRegistry(t *testing.T) {
	l, buf := newBuffered("info")
	Register("registered", l)
	if Get("registered") != l {
		t.Error("expected registered logger")
	}

	SetGlobal(l)
	Get("unregistered").Info("hello")
	if got := lastEntry(t, buf)[FieldComponent]; got != "unregistered" {
		t.Errorf("expected fallback to be tagged with its name, got %v", got)
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "pipeline", &buf)
	l.Info("hello", Fields(FieldStage, "names"))
	out := buf.String()
	for _, want := range []string{"[PIP][INF]", "hello", "stage:", "names"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" || !cfg.Timestamp {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json", Output: "stderr"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}
