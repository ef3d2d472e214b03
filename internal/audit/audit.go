package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PolarWolf314/scytale/internal/configs"
)

// Entry represents a single history entry.
type Entry struct {
	Timestamp string   `json:"ts"`     // RFC3339 with microseconds.
	Operation string   `json:"op"`     // encrypt or decrypt.
	Cipher    string   `json:"cipher"` // Canonical cipher name.
	Files     []string `json:"files,omitempty"`
}

// Time parses the entry's timestamp. The zero time is returned for entries
// written by hand with a malformed timestamp.
func (e Entry) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Log appends an entry to the history log, creating it if needed.
// Failures are ignored; operations should not fail because history could
// not be written.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the history log.
func LogPath() string {
	return filepath.Join(configs.UserScytaleSettings.ConfigDir, "history.jsonl")
}

// ReadEntries reads all entries from the history log, oldest first.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into history entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Filter selects history entries.
type Filter struct {
	// Operations keeps entries whose operation is listed. Empty keeps all.
	Operations []string

	// Cipher keeps entries for one cipher. Empty keeps all.
	Cipher string

	// File keeps entries that wrote a path containing this substring.
	File string
}

// Apply returns the entries matching f, preserving order.
func (f Filter) Apply(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if len(f.Operations) > 0 && !contains(f.Operations, e.Operation) {
			continue
		}
		if f.Cipher != "" && e.Cipher != f.Cipher {
			continue
		}
		if f.File != "" && !anyContains(e.Files, f.File) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyContains(list []string, sub string) bool {
	for _, v := range list {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}
