// Package output renders an aggregate report for a terminal and as Markdown
// commentary. Every result kind maps to one deterministic template; an
// unrecognized kind renders a distinct "unhandled result type" message so a
// record is never silently dropped.
package output

import (
	"fmt"

	"listlint/internal/review"
)

// describe maps a result to its explanation: a headline plus optional bullet
// items (validator violations).
func describe(res review.Result) (headline string, items []string) {
	switch res.Kind {
	case review.KindValid:
		return "No issues found.", nil
	case review.KindSchemaError:
		return "Schema violations found:", res.Violations
	case review.KindTagError:
		return "Tag violations found:", res.Violations
	case review.KindURLError:
		return fmt.Sprintf("The declared link '%s' is not a valid http or https URL.", res.URL), nil
	case review.KindRepositoryError, review.KindLabelError:
		return res.Message, nil
	case review.KindUnsupportedExtension:
		return "File extension is not supported; project files must use .yml.", nil
	default:
		// Forward-compatibility net: new kinds must surface, not vanish.
		return fmt.Sprintf("Unhandled result type '%s'.", res.Kind), nil
	}
}

// countPhrase renders the clean-project summary line.
func countPhrase(n int) string {
	if n == 1 {
		return "1 project without issues"
	}
	return fmt.Sprintf("%d projects without issues", n)
}
