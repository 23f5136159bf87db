package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"time"
)

// Filter selects audit entries.
type Filter struct {
	Since     *time.Time // include only entries on or after
	Operation string     // exact operation name, or "" for all
	Username  string     // exact account name, or "" for all
	Failed    bool       // only unsuccessful runs
}

// Matches returns true if e should be included.
func (f *Filter) Matches(e *Entry) bool {
	if f == nil {
		return true
	}
	if f.Operation != "" && e.Operation != f.Operation {
		return false
	}
	if f.Username != "" && e.Username != f.Username {
		return false
	}
	if f.Failed && e.Success {
		return false
	}
	if f.Since != nil {
		t, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil || t.Before(*f.Since) {
			return false
		}
	}
	return true
}

// ReadLog reads a JSON-lines audit log file and returns entries (optionally filtered).
func ReadLog(path string, filter *Filter) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue // skip malformed lines
		}
		if filter != nil && !filter.Matches(&e) {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
