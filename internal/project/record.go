package project

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is a parsed project listing file. It is constructed once per file
// per run and never mutated afterwards.
type Record struct {
	// RelativePath identifies the record within a run (e.g.
	// "_data/projects/example.yml"). It is stable across re-runs of the
	// same pull request.
	RelativePath string

	Name        string   `yaml:"name"`
	Description string   `yaml:"desc"`
	Site        string   `yaml:"site"`
	Tags        []string `yaml:"tags"`
	Label       LabelRef `yaml:"label"`

	// raw is the document as parsed, kept for schema validation so the
	// validator sees exactly what the author wrote (unknown keys included).
	raw map[string]any
}

// LabelRef declares the contributor label a project directs newcomers to.
type LabelRef struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

// Parse builds a Record from file content. relativePath becomes the record's
// identity; content must be a single YAML document.
//
// The raw document is authoritative: a document whose values have the wrong
// shape for the typed fields (e.g. a scalar where a list belongs) still
// parses, leaving those fields zero-valued. Schema validation of the raw
// document reports the mismatch, so it surfaces as a violation rather than
// as an unreadable file.
func Parse(relativePath string, content []byte) (*Record, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relativePath, err)
	}

	var rec Record
	_ = yaml.Unmarshal(content, &rec)

	rec.RelativePath = relativePath
	rec.raw = raw
	return &rec, nil
}

// Load reads and parses the file at path, using relativePath as the record's
// identity.
func Load(path, relativePath string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", relativePath, err)
	}
	return Parse(relativePath, data)
}

// Raw returns the document as a generic map, as the author wrote it.
func (r *Record) Raw() map[string]any {
	return r.raw
}

// Link returns the project's declared contributor link.
func (r *Record) Link() string {
	return r.Label.Link
}

// Repository derives the hosted-repository owner/name pair from the declared
// link. ok is false when the record is not remote-tracked, in which case no
// remote status checks apply.
func (r *Record) Repository() (owner, name string, ok bool) {
	u, err := url.Parse(r.Label.Link)
	if err != nil {
		return "", "", false
	}
	host := strings.ToLower(u.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", "", false
	}
	parts := strings.FieldsFunc(strings.Trim(u.Path, "/"), func(c rune) bool { return c == '/' })
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
