// Package review classifies project records into review results. The engine
// applies checks in a fixed priority order and stops at the first failing
// stage, so cheap local checks always run and a record with local errors
// never triggers an outbound network call.
package review

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"listlint/internal/project"
)

// AllowedExtension is the only file extension accepted for project files.
const AllowedExtension = ".yml"

// SchemaValidator reports structural violations for a record.
type SchemaValidator interface {
	Validate(rec *project.Record) []string
}

// TagValidator reports tag violations for a record.
type TagValidator interface {
	Validate(rec *project.Record) []string
}

// RepositoryChecker reports the remote state of a hosted repository.
type RepositoryChecker interface {
	CheckRepository(ctx context.Context, owner, name string) RepoStatus
}

// LabelChecker reports whether the configured contributor label exists on a
// hosted repository.
type LabelChecker interface {
	CheckLabel(ctx context.Context, owner, name, label string) LabelStatus
}

type Engine struct {
	schema    SchemaValidator
	tags      TagValidator
	repos     RepositoryChecker
	labels    LabelChecker
	labelName string
}

func NewEngine(schema SchemaValidator, tags TagValidator, repos RepositoryChecker, labels LabelChecker, labelName string) *Engine {
	return &Engine{
		schema:    schema,
		tags:      tags,
		repos:     repos,
		labels:    labels,
		labelName: labelName,
	}
}

// Review classifies exactly one record. Failures are returned as data, never
// as an error; a rate-limited remote check is inconclusive and treated as if
// the stage passed, so quota exhaustion can't block a contribution.
func (e *Engine) Review(ctx context.Context, rec *project.Record) Result {
	path := rec.RelativePath

	if !strings.EqualFold(filepath.Ext(path), AllowedExtension) {
		return UnsupportedExtension(path)
	}

	if violations := e.schema.Validate(rec); len(violations) > 0 {
		return SchemaError(path, violations)
	}

	if violations := e.tags.Validate(rec); len(violations) > 0 {
		return TagError(path, violations)
	}

	link := rec.Link()
	if !validLink(link) {
		return URLError(path, link)
	}

	owner, name, tracked := rec.Repository()
	if !tracked {
		return Valid(path)
	}

	if res, flagged := e.checkRepository(ctx, path, owner, name); flagged {
		return res
	}

	if res, flagged := e.checkLabel(ctx, path, owner, name, link); flagged {
		return res
	}

	return Valid(path)
}

func (e *Engine) checkRepository(ctx context.Context, path, owner, name string) (Result, bool) {
	status := e.repos.CheckRepository(ctx, owner, name)
	if status.RateLimited {
		return Result{}, false
	}

	switch status.Reason {
	case ReasonArchived:
		return RepositoryError(path, fmt.Sprintf(
			"Repository '%s/%s' is marked as archived and is not accepting contributions.", owner, name)), true
	case ReasonMissing:
		return RepositoryError(path, fmt.Sprintf(
			"Repository '%s/%s' could not be found. Please confirm the repository location.", owner, name)), true
	case ReasonRedirect:
		return RepositoryError(path, fmt.Sprintf(
			"Repository '%s' now lives at '%s'. Please update the project link before this can be merged.",
			status.OldLocation, status.NewLocation)), true
	case ReasonError:
		return RepositoryError(path, fmt.Sprintf(
			"Checking repository '%s/%s' failed: %s", owner, name, status.Detail)), true
	}
	return Result{}, false
}

func (e *Engine) checkLabel(ctx context.Context, path, owner, name, link string) (Result, bool) {
	status := e.labels.CheckLabel(ctx, owner, name, e.labelName)
	if status.RateLimited {
		return Result{}, false
	}

	switch status.Reason {
	case ReasonError:
		return LabelError(path, fmt.Sprintf(
			"Checking labels for '%s/%s' failed: %s", owner, name, status.Detail)), true
	case ReasonRepositoryMissing:
		return LabelError(path, fmt.Sprintf(
			"Could not list labels for '%s/%s'. Please confirm the repository reference.", owner, name)), true
	case ReasonMissing:
		return LabelError(path, fmt.Sprintf(
			"Label '%s' was not found. Please check the repository's label list at https://github.com/%s/%s/labels.",
			e.labelName, owner, name)), true
	}

	// The declared link must match the canonical label URL, but only a link
	// that is itself label-scoped is held to that; a plain repository link
	// is acceptable as-is.
	if status.URL != "" && status.URL != link && labelScoped(link) {
		return LabelError(path, fmt.Sprintf(
			"The declared link does not match the label's canonical URL. Please update it to %s.", status.URL)), true
	}
	return Result{}, false
}

// validLink reports whether link is a syntactically well-formed http(s) URL.
// A malformed string classifies the record, it is never propagated as an
// error.
func validLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// labelScoped reports whether link points at a label rather than at the
// repository itself.
func labelScoped(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return strings.Contains(u.Path, "/labels/")
}
