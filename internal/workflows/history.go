package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/scytale/internal/audit"
	"github.com/PolarWolf314/scytale/internal/ciphers"
	kerrors "github.com/PolarWolf314/scytale/internal/errors"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation (comma-separated).
	Operations string

	// Cipher filters entries by cipher name.
	Cipher string

	// File filters entries to those that wrote a path containing File.
	File string

	// Since filters entries after this date (YYYY-MM-DD format).
	Since string

	// Until filters entries before this date (YYYY-MM-DD format).
	Until string
}

// HistoryResult contains the outcome of a history query.
type HistoryResult struct {
	// Entries are the filtered history entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// History reads and filters the batch history log.
//
// Returns ErrInvalidDateFormat if a date filter is not YYYY-MM-DD.
func History(ctx context.Context, opts HistoryOptions) (*HistoryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading history log: %w", err)
	}

	result := &HistoryResult{TotalEntriesBeforeFilter: len(entries)}

	filter := audit.Filter{File: opts.File}
	if opts.Operations != "" {
		for _, op := range strings.Split(opts.Operations, ",") {
			filter.Operations = append(filter.Operations, strings.ToLower(strings.TrimSpace(op)))
		}
	}
	if opts.Cipher != "" {
		filter.Cipher = normalizeCipherName(opts.Cipher)
	}
	filtered := filter.Apply(entries)

	if opts.Since != "" {
		since, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterTime(filtered, func(t time.Time) bool { return !t.Before(since) })
	}

	if opts.Until != "" {
		until, err := time.Parse("2006-01-02", opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		// Include the entire day.
		until = until.Add(24*time.Hour - time.Nanosecond)
		filtered = filterTime(filtered, func(t time.Time) bool { return !t.After(until) })
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// The limit always keeps the most recent entries.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

// filterTime keeps entries with a parseable timestamp accepted by keep.
func filterTime(entries []audit.Entry, keep func(time.Time) bool) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t := e.Time()
		if t.IsZero() {
			continue
		}
		if keep(t) {
			result = append(result, e)
		}
	}
	return result
}

// normalizeCipherName maps aliases such as "Rail-Fence" onto the registered
// name, leaving unknown names as given so the filter simply matches nothing.
func normalizeCipherName(name string) string {
	if info, err := ciphers.Lookup(name); err == nil {
		return info.Name
	}
	return name
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS format.
func FormatDateTime(ts string) string {
	t := audit.Entry{Timestamp: ts}.Time()
	if t.IsZero() {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatFiles summarises the files of an entry, listing at most three.
func FormatFiles(e audit.Entry) string {
	if len(e.Files) > 3 {
		return fmt.Sprintf("%d files", len(e.Files))
	}
	return strings.Join(e.Files, ", ")
}
