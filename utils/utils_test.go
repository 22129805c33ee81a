package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_ShouldDecorateMessage(t *testing.T) {
	s := DecorateText("processing", ErrorMessage)
	if !strings.HasPrefix(s, ErrorColor) || !strings.HasSuffix(s, DefaultColor) {
		t.Errorf("The error message should be wrapped in color codes, got: %q", s)
	}

	s = DecorateText("processing", MessageType(42))
	if s != "processing" {
		t.Errorf("An unknown message type should pass through unchanged, got: %q", s)
	}
}

func TestUtils_ShouldFormatDuration(t *testing.T) {
	if got := FormatTime(1500 * time.Millisecond); got != "1.50s" {
		t.Errorf("Expected 1.50s, got: %v", got)
	}
	if got := FormatTime(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("Expected 1m 30.00s, got: %v", got)
	}
}
