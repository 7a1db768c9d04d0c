package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"articlecards/internal/platform/logging"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "url", "https://example.org/ARTICLES.json")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "https://example.org/ARTICLES.json") {
		t.Fatalf("expected warn line with url, got %s", out)
	}
}

func TestNewUnknownLevelDefaultsToWarn(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New("nonsense", &buf)
	logger.Debug("quiet")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered, got %s", buf.String())
	}
	if !logger.IsWarn() {
		t.Fatalf("expected warn level to be enabled")
	}
}
