package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"taskman/internal/config"
)

func testConfig(level, format string) *config.Config {
	return &config.Config{LogLevel: level, LogFormat: format}
}

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, testConfig("warn", "text"))

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn should be logged: %q", out)
	}
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, testConfig("shouting", "text"))

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug should be suppressed at the info fallback: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info should be logged: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, testConfig("info", "json"))

	logger.Info("structured message", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"structured message"`) {
		t.Errorf("json output missing message: %q", out)
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input string
		want  log.Formatter
	}{
		{"text", log.TextFormatter},
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"bogus", log.TextFormatter},
	}
	for _, tt := range tests {
		if got := parseFormatter(tt.input); got != tt.want {
			t.Errorf("parseFormatter(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}
