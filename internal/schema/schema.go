// Package schema validates a project record's structure against the listing
// schema. Violations come back as human-readable strings, one per offending
// field; an empty slice means the record is structurally valid.
package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"listlint/internal/project"
)

const projectSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "desc", "site", "tags", "label"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "desc": { "type": "string", "minLength": 1 },
    "site": { "type": "string", "minLength": 1 },
    "tags": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string" }
    },
    "label": {
      "type": "object",
      "required": ["name", "link"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "link": { "type": "string", "minLength": 1 }
      }
    }
  }
}`

var projectSchemaLoader = gojsonschema.NewStringLoader(projectSchemaJSON)

// Validator checks records against the embedded listing schema.
type Validator struct{}

func New() *Validator { return &Validator{} }

// Validate returns one violation string per schema error. A record whose
// document could not be checked at all yields a single violation describing
// why, never an empty result.
func (v *Validator) Validate(rec *project.Record) []string {
	doc := rec.Raw()
	if doc == nil {
		return []string{"document is empty or not a mapping"}
	}

	result, err := gojsonschema.Validate(projectSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return []string{fmt.Sprintf("schema validation failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations
}
