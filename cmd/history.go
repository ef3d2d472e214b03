package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/scytale/internal/audit"
	"github.com/PolarWolf314/scytale/internal/ui"
	"github.com/PolarWolf314/scytale/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyReverse   bool
	historyOperation string
	historyCipher    string
	historyFile      string
	historySince     string
	historyUntil     string
	historyOneline   bool
	historyJSON      bool
)

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "limit number of entries shown")
	HistoryCmd.Flags().BoolVar(&historyReverse, "reverse", false, "show most recent entries first")
	HistoryCmd.Flags().StringVar(&historyOperation, "operation", "", "filter by operation (comma-separated)")
	HistoryCmd.Flags().StringVar(&historyCipher, "cipher", "", "filter by cipher name")
	HistoryCmd.Flags().StringVar(&historyFile, "file", "", "filter by written file path (substring)")
	HistoryCmd.Flags().StringVar(&historySince, "since", "", "show entries after date (YYYY-MM-DD)")
	HistoryCmd.Flags().StringVar(&historyUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	HistoryCmd.Flags().BoolVar(&historyOneline, "oneline", false, "compact one-line format")
	HistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
}

// resetHistoryState resets the history command's global state for testing.
func resetHistoryState() {
	historyLimit = 0
	historyReverse = false
	historyOperation = ""
	historyCipher = ""
	historyFile = ""
	historySince = ""
	historyUntil = ""
	historyOneline = false
	historyJSON = false
	resetCobraFlagState(HistoryCmd)
}

// HistoryCmd shows which cipher wrote which files.
var HistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"log"},
	Short:   "View the history of batch file runs",
	Long: `Displays the history of encrypt and decrypt runs over files.

Each run records its cipher and the files it wrote, so you can tell what a
.scy file needs to be decrypted with. Keys are never recorded.

Examples:
  scytale history                          # View full history
  scytale history -n 10                    # Last 10 entries
  scytale history --reverse                # Most recent first
  scytale history --file notes.txt.scy     # Which cipher wrote this file?
  scytale history --operation encrypt      # Filter by operation
  scytale history --since 2024-01-01       # Filter by date
  scytale history --json                   # JSON output`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting history command")
	out := cmd.OutOrStdout()

	result, err := workflows.History(cmd.Context(), workflows.HistoryOptions{
		Limit:      historyLimit,
		Reverse:    historyReverse,
		Operations: historyOperation,
		Cipher:     historyCipher,
		File:       historyFile,
		Since:      historySince,
		Until:      historyUntil,
	})
	if err != nil {
		return err
	}

	Logger.Debugf("Parsed %d entries from history log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Fprintln(out, "No history entries found.")
			fmt.Fprintln(out, ui.Hint("Runs are recorded after "+ui.Code.Sprint("scytale encrypt --files")+" or "+ui.Code.Sprint("scytale decrypt --files")))
		} else {
			fmt.Fprintln(out, "No history entries found matching the filters.")
		}
		return nil
	}

	switch {
	case historyJSON:
		return outputHistoryJSON(out, result.Entries)
	case historyOneline:
		outputHistoryOneline(out, result.Entries)
	default:
		outputHistoryDefault(out, result.Entries)
	}
	return nil
}

func outputHistoryJSON(out io.Writer, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func outputHistoryOneline(out io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		date := workflows.FormatDateTime(e.Timestamp)
		if len(date) >= 10 {
			date = date[:10]
		}
		fmt.Fprintf(out, "%s %s %s %d files\n", date, e.Operation, e.Cipher, len(e.Files))
	}
}

func outputHistoryDefault(out io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		fmt.Fprintf(out, "%-19s  %-8s  %-11s  %s\n", workflows.FormatDateTime(e.Timestamp), e.Operation, e.Cipher, workflows.FormatFiles(e))
	}
}
