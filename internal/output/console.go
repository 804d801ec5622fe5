package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"listlint/internal/report"
)

// RenderText writes the plain-text report for a terminal run. Output order
// follows the report's insertion order so repeated runs print identically.
func RenderText(w io.Writer, rep *report.Report) {
	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	switch rep.Mode() {
	case report.ModeUnexpectedFiles:
		bad.Fprintln(w, "Unexpected files found:")
		for _, path := range rep.UnsupportedPaths() {
			fmt.Fprintf(w, "  - %s\n", path)
		}
		fmt.Fprintln(w, "Project files must use the .yml extension. Per-project review is skipped until this is fixed.")

	case report.ModeSummary:
		bold.Fprintf(w, "%s.\n", countPhrase(rep.CleanCount()))
		for _, fr := range rep.Flagged() {
			fmt.Fprintln(w)
			writeTextResult(w, bad, fr)
		}

	default:
		for i, fr := range rep.Results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if fr.Result.Flagged() {
				writeTextResult(w, bad, fr)
			} else {
				ok.Fprintf(w, "[OK]   %s\n", fr.Path)
			}
		}
	}

	if len(rep.StrayFiles) > 0 {
		fmt.Fprintln(w)
		bad.Fprintln(w, "Files outside the projects directory:")
		for _, path := range rep.StrayFiles {
			fmt.Fprintf(w, "  - %s\n", path)
		}
	}
	if len(rep.NonYAMLFiles) > 0 && rep.Mode() != report.ModeUnexpectedFiles {
		fmt.Fprintln(w)
		bad.Fprintln(w, "Files with a disallowed extension in the projects directory:")
		for _, path := range rep.NonYAMLFiles {
			fmt.Fprintf(w, "  - %s\n", path)
		}
	}
}

func writeTextResult(w io.Writer, bad *color.Color, fr report.FileResult) {
	bad.Fprintf(w, "[FAIL] %s\n", fr.Path)
	headline, items := describe(fr.Result)
	fmt.Fprintf(w, "  %s\n", headline)
	for _, item := range items {
		fmt.Fprintf(w, "    - %s\n", item)
	}
}

// exit code contract:
// 0 = clean run
// 1 = flagged projects or misplaced files
// 3 = fatal error (review did not run)

// ExitCode maps a report to the process exit code.
func ExitCode(rep *report.Report) int {
	if rep.HasIssues() {
		return 1
	}
	return 0
}
