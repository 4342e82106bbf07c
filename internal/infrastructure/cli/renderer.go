package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/doeshing/shai-forge/internal/domain"
)

// renderRunSummary prints a completed generation run in a friendly,
// ASCII-only format.
func renderRunSummary(out io.Writer, run domain.RunRecord) {
	fmt.Fprintf(out, "Done! Saved %d examples to %s\n", run.Produced, run.OutputPath)
	fmt.Fprintf(out, "Attempts: %d (duplicates discarded: %d)\n", run.Attempts, run.Duplicates)
	fmt.Fprintf(out, "Shells: bash=%d powershell=%d\n", run.BashCount, run.PowerShellCount)
	fmt.Fprintf(out, "Safety: dangerous=%d safe=%d\n", run.DangerousCount, run.SafeCount)
	fmt.Fprintf(out, "Seed: %d\n", run.Seed)
	fmt.Fprintf(out, "Run ID: %s\n", run.ID)
}

// renderReport prints the analyze report, capping the warning listing at
// maxWarnings while keeping the totals exact.
func renderReport(out io.Writer, report domain.DatasetReport, maxWarnings int) {
	fmt.Fprintln(out, "\n--- Report ---")
	fmt.Fprintf(out, "Total Examples: %d\n", report.Total)
	fmt.Fprintf(out, "Shell Distribution: %s\n", formatCounts(report.Shells))
	fmt.Fprintf(out, "Safety Distribution: dangerous=%d safe=%d\n", report.Danger[true], report.Danger[false])

	if len(report.Warnings) > 0 {
		fmt.Fprintf(out, "\nWarnings (%d):\n", len(report.Warnings))
		for i, warning := range report.Warnings {
			if maxWarnings > 0 && i == maxWarnings {
				fmt.Fprintf(out, "  ... and %d more\n", len(report.Warnings)-maxWarnings)
				break
			}
			fmt.Fprintf(out, "  line %d: %s (%s)\n", warning.Line, warning.Kind, warning.Detail)
		}
	}

	if report.UnderLabeled > 0 || report.OverLabeled > 0 {
		fmt.Fprintf(out, "\nLabel audit: %d under-labeled, %d over-labeled\n", report.UnderLabeled, report.OverLabeled)
		for _, finding := range report.Findings {
			fmt.Fprintf(out, "  line %d [%s] %s\n", finding.Line, finding.Kind, finding.Command)
		}
	} else {
		fmt.Fprintln(out, "\nLabel audit: no disagreements")
	}

	if report.Ready {
		fmt.Fprintln(out, "\nStatus: READY FOR FINE-TUNING")
	} else {
		fmt.Fprintf(out, "\nCRITICAL: One shell type is missing! (%s)\n", strings.Join(report.MissingShells, ", "))
	}
}

// renderRunRecords lists run history entries one per line.
func renderRunRecords(out io.Writer, records []domain.RunRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | %d records | seed %d | %s\n",
			rec.StartedAt.Format("2006-01-02 15:04:05"),
			rec.ID,
			rec.Produced,
			rec.Seed,
			rec.OutputPath)
	}
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", key, counts[key]))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
