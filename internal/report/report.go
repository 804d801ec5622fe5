// Package report aggregates per-file review results into one immutable
// report and decides how that report should be presented.
package report

import (
	"listlint/internal/review"
)

// FileResult pairs a reviewed file with its classified result. Reports keep
// these in input order because display order matters to the reader.
type FileResult struct {
	Path   string
	Result review.Result
}

// Report is the aggregate outcome of one run. It is built once by the Runner
// and never mutated afterwards.
type Report struct {
	// Results holds one entry per reviewed file, in input order.
	Results []FileResult

	// StrayFiles are paths that look like project files but sit outside the
	// projects directory.
	StrayFiles []string

	// NonYAMLFiles sit inside the projects directory with a disallowed
	// extension.
	NonYAMLFiles []string

	// Skipped are files compacted out of the review set because they could
	// not be read or parsed. They never receive a result.
	Skipped []string
}

// Mode selects the presentation strategy for a batch.
type Mode int

const (
	// ModeDetailed shows one detail block per project, valid or not.
	// Small batches get full transparency.
	ModeDetailed Mode = iota

	// ModeSummary states the clean-project count and details only the
	// flagged projects, keeping large batches readable.
	ModeSummary

	// ModeUnexpectedFiles replaces the whole batch's message with a single
	// notice listing the offending paths; per-project detail is suppressed.
	ModeUnexpectedFiles
)

// summaryThreshold is the batch size above which clean projects are rolled
// up instead of listed individually.
const summaryThreshold = 2

// Mode decides the presentation strategy from the batch shape.
func (r *Report) Mode() Mode {
	if len(r.UnsupportedPaths()) > 0 {
		return ModeUnexpectedFiles
	}
	if len(r.Results) > summaryThreshold {
		return ModeSummary
	}
	return ModeDetailed
}

// UnsupportedPaths lists the files whose extension is not allowed, in input
// order.
func (r *Report) UnsupportedPaths() []string {
	var paths []string
	for _, fr := range r.Results {
		if fr.Result.Kind == review.KindUnsupportedExtension {
			paths = append(paths, fr.Path)
		}
	}
	return paths
}

// Flagged lists the results needing author attention, in input order.
func (r *Report) Flagged() []FileResult {
	var flagged []FileResult
	for _, fr := range r.Results {
		if fr.Result.Flagged() {
			flagged = append(flagged, fr)
		}
	}
	return flagged
}

// CleanCount is the number of projects with no issues.
func (r *Report) CleanCount() int {
	return len(r.Results) - len(r.Flagged())
}

// HasIssues reports whether anything in the run requires action: a flagged
// project, a stray file, or a non-YAML file.
func (r *Report) HasIssues() bool {
	return len(r.Flagged()) > 0 || len(r.StrayFiles) > 0 || len(r.NonYAMLFiles) > 0
}
