package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Printf("found %d bits\n", 12)
	l.Warnf("bit count %d can never match", 200)
	_ = l.Sync()

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "found 12 bits") {
		t.Errorf("unexpected info line %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN") {
		t.Errorf("unexpected warn line %q", lines[1])
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Printf("discarded")
	l.Println("discarded")
}
