package output

import (
	"fmt"
	"strings"

	"listlint/internal/report"
)

const (
	commentGreeting = "Hi! I'm a robot that reviews new project listings before a human does."
	commentUpdate   = "I've re-checked the updated project files on this pull request."
)

// RenderComment builds the single Markdown comment for an automated
// pull-request review. rerun selects the update header instead of the
// greeting. The output is bit-identical across runs for identical reports.
func RenderComment(rep *report.Report, rerun bool) string {
	var b strings.Builder

	if rerun {
		b.WriteString(commentUpdate)
	} else {
		b.WriteString(commentGreeting)
	}
	b.WriteString("\n\n")

	switch rep.Mode() {
	case report.ModeUnexpectedFiles:
		b.WriteString("The following files are not expected in the projects directory:\n\n")
		for _, path := range rep.UnsupportedPaths() {
			fmt.Fprintf(&b, "- `%s`\n", path)
		}
		b.WriteString("\nProject files must use the `.yml` extension. I'll take another look once they are renamed or removed.\n")

	case report.ModeSummary:
		fmt.Fprintf(&b, ":white_check_mark: %s.\n", countPhrase(rep.CleanCount()))
		for _, fr := range rep.Flagged() {
			b.WriteString("\n")
			writeMarkdownResult(&b, fr)
		}

	default:
		for i, fr := range rep.Results {
			if i > 0 {
				b.WriteString("\n")
			}
			writeMarkdownResult(&b, fr)
		}
	}

	if len(rep.StrayFiles) > 0 {
		b.WriteString("\nThese files look like project listings but sit outside the projects directory:\n\n")
		for _, path := range rep.StrayFiles {
			fmt.Fprintf(&b, "- `%s`\n", path)
		}
	}

	return b.String()
}

func writeMarkdownResult(b *strings.Builder, fr report.FileResult) {
	fmt.Fprintf(b, "#### `%s`\n\n", fr.Path)

	headline, items := describe(fr.Result)
	if fr.Result.Flagged() {
		fmt.Fprintf(b, ":warning: %s\n", headline)
	} else {
		fmt.Fprintf(b, ":white_check_mark: %s\n", headline)
	}
	if len(items) > 0 {
		b.WriteString("\n")
		for _, item := range items {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
}
