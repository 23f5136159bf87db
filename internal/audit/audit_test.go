package audit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLogger_Log(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "history.jsonl")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	e := &Entry{
		Operation: OpLogin,
		Username:  "alice",
		State:     "done",
		Success:   true,
	}
	if err := logger.Log(e); err != nil {
		t.Fatal(err)
	}
	if err := logger.Log(e); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
	if e.Timestamp == "" {
		t.Error("timestamp not filled in")
	}
}

func TestOpen(t *testing.T) {
	l, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(NopLogger); !ok {
		t.Errorf("empty path: got %T, want NopLogger", l)
	}
	if err := l.Log(&Entry{Operation: OpRegister}); err != nil {
		t.Fatal(err)
	}

	l, err = Open(filepath.Join(t.TempDir(), "h.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(*FileLogger); !ok {
		t.Errorf("path: got %T, want *FileLogger", l)
	}
}
