package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogAppendsToFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "museum.txt")
	l := NewFile(path)
	l.Log("first")
	l.Logf("texture: %s: %v", "a.png", "boom")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "] first") {
		t.Fatalf("line not stamped: %q", lines[0])
	}
	if !strings.HasSuffix(l.Last(), "texture: a.png: boom") {
		t.Fatalf("last = %q", l.Last())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("file has %d lines", got)
	}
}

func TestMemoryOnlyKeepsRecentLines(t *testing.T) {
	l := NewFile("")
	for i := 0; i < MaxLines+15; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != MaxLines {
		t.Fatalf("kept %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], "line 15") {
		t.Fatalf("oldest kept = %q", lines[0])
	}
}
