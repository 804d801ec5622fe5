// Package tags validates the declared tag set of a project record.
package tags

import (
	"fmt"
	"regexp"

	"listlint/internal/project"
)

// allowedTag is the full set of characters a tag may use. The violation
// wording below must stay in sync with it.
var allowedTag = regexp.MustCompile(`^[a-z0-9+#.-]+$`)

type Validator struct{}

func New() *Validator { return &Validator{} }

// Validate returns one violation string per offending tag, in declaration
// order. An empty slice means every tag is acceptable.
func (v *Validator) Validate(rec *project.Record) []string {
	var violations []string

	if len(rec.Tags) == 0 {
		return []string{"Project must declare at least one tag."}
	}

	seen := make(map[string]struct{}, len(rec.Tags))
	for _, tag := range rec.Tags {
		if !allowedTag.MatchString(tag) {
			violations = append(violations, fmt.Sprintf(
				"Tag '%s' contains invalid characters. Allowed characters: a-z, 0-9, +, #, . or -", tag))
			continue
		}
		if _, dup := seen[tag]; dup {
			violations = append(violations, fmt.Sprintf("Tag '%s' is declared more than once.", tag))
			continue
		}
		seen[tag] = struct{}{}
	}

	return violations
}
