package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := LevelFromString(c.in); got != c.want {
			t.Errorf("level %q: want %v, got %v", c.in, c.want, got)
		}
	}
}

func TestInitLoggerJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	l := InitLogger(LoggerConfig{LogLevel: "warn"}, &buf)
	defer l.Close()
	l.Info("dropped")
	l.Warn("kept", slog.Int("n", 1))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "kept" || rec["n"] != 1.0 {
		t.Errorf("wrong record %v", rec)
	}
}

func TestInitLoggerText(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	l := InitLogger(LoggerConfig{LogLevel: "debug", Format: "text"}, &buf)
	defer l.Close()
	slog.Debug("via default")
	if !strings.Contains(buf.String(), "msg=\"via default\"") {
		t.Errorf("default logger not installed: %q", buf.String())
	}
}

func TestInitLoggerFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	name := filepath.Join(t.TempDir(), "pasteparser.log")
	var buf bytes.Buffer
	l := InitLogger(LoggerConfig{LogToFile: true, Filename: name, MaxSize: 1}, &buf)
	l.Info("to both")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, buf.Bytes()) {
		t.Errorf("file and writer differ:\n%s\n%s", b, buf.Bytes())
	}
}
