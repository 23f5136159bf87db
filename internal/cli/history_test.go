package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestHistoryCmd(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "history.jsonl")
	lines := `{"timestamp":"2026-01-01T00:00:00Z","operation":"login","username":"a","state":"done","success":true}
{"timestamp":"2026-01-02T00:00:00Z","operation":"login","username":"b","state":"failed","success":false,"error":"authentication rejected by server: status 401 Unauthorized"}
`
	os.WriteFile(logPath, []byte(lines), 0o644)

	out, err := execute(t, "", "history", "--log", logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "done") || !strings.Contains(out, "FAILED: authentication rejected") {
		t.Errorf("output: %q", out)
	}

	out, err = execute(t, "", "history", "--log", logPath, "--failed", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("json %q: %v", out, err)
	}
	if len(entries) != 1 || entries[0]["username"] != "b" {
		t.Errorf("entries: %v", entries)
	}
}

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-01-01T00:00:00Z", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2026-02-01", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"24h", now.Add(-24 * time.Hour), true},
		{"yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		got, err := parseSince(tt.in, now)
		if (err == nil) != tt.ok {
			t.Errorf("parseSince(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && !got.Equal(tt.want) {
			t.Errorf("parseSince(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
