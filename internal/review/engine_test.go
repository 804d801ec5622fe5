package review

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"listlint/internal/project"
)

type fakeSchema struct {
	violations []string
	calls      int
}

func (f *fakeSchema) Validate(*project.Record) []string {
	f.calls++
	return f.violations
}

type fakeTags struct {
	violations []string
	calls      int
}

func (f *fakeTags) Validate(*project.Record) []string {
	f.calls++
	return f.violations
}

type fakeRepoChecker struct {
	status RepoStatus
	calls  int
}

func (f *fakeRepoChecker) CheckRepository(context.Context, string, string) RepoStatus {
	f.calls++
	return f.status
}

type fakeLabelChecker struct {
	status LabelStatus
	calls  int
}

func (f *fakeLabelChecker) CheckLabel(context.Context, string, string, string) LabelStatus {
	f.calls++
	return f.status
}

type fixture struct {
	schema *fakeSchema
	tags   *fakeTags
	repos  *fakeRepoChecker
	labels *fakeLabelChecker
	engine *Engine
}

func newFixture() *fixture {
	f := &fixture{
		schema: &fakeSchema{},
		tags:   &fakeTags{},
		repos:  &fakeRepoChecker{status: RepoStatus{Reason: ReasonOK}},
		labels: &fakeLabelChecker{status: LabelStatus{Reason: ReasonOK}},
	}
	f.engine = NewEngine(f.schema, f.tags, f.repos, f.labels, "help wanted")
	return f
}

func trackedRecord(link string) *project.Record {
	return &project.Record{
		RelativePath: "_data/projects/example.yml",
		Name:         "Example",
		Tags:         []string{"web"},
		Label:        project.LabelRef{Name: "help wanted", Link: link},
	}
}

const canonicalLink = "https://github.com/acme/example/labels/help%20wanted"

func TestReview_ValidWithoutRemoteTracking(t *testing.T) {
	f := newFixture()
	rec := &project.Record{
		RelativePath: "_data/projects/local.yml",
		Tags:         []string{"web"},
		Label:        project.LabelRef{Name: "help wanted", Link: "https://example.org/contribute"},
	}

	res := f.engine.Review(context.Background(), rec)
	if res.Kind != KindValid {
		t.Fatalf("expected valid, got %s (%+v)", res.Kind, res)
	}
	if f.repos.calls != 0 || f.labels.calls != 0 {
		t.Fatal("remote checks must not run for non-remote-tracked records")
	}
}

func TestReview_UnsupportedExtensionRunsNothingElse(t *testing.T) {
	f := newFixture()
	rec := &project.Record{RelativePath: "_data/projects/example.json"}

	res := f.engine.Review(context.Background(), rec)
	if res.Kind != KindUnsupportedExtension {
		t.Fatalf("expected unsupported-extension, got %s", res.Kind)
	}
	if f.schema.calls != 0 || f.tags.calls != 0 || f.repos.calls != 0 || f.labels.calls != 0 {
		t.Fatal("no other stage may run after the extension check fails")
	}
}

func TestReview_SchemaErrorShortCircuits(t *testing.T) {
	f := newFixture()
	f.schema.violations = []string{"(root): desc is required"}

	res := f.engine.Review(context.Background(), trackedRecord(canonicalLink))
	if res.Kind != KindSchemaError {
		t.Fatalf("expected schema-error, got %s", res.Kind)
	}
	if !reflect.DeepEqual(res.Violations, f.schema.violations) {
		t.Fatalf("details must equal the validator output, got %v", res.Violations)
	}
	if f.tags.calls != 0 || f.repos.calls != 0 || f.labels.calls != 0 {
		t.Fatal("later stages must not run after a schema error")
	}
}

func TestReview_TagErrorShortCircuits(t *testing.T) {
	f := newFixture()
	f.tags.violations = []string{"Tag 'Web' contains invalid characters. Allowed characters: a-z, 0-9, +, #, . or -"}

	// Even with a malformed link and a broken remote state, the tag error
	// wins because it is checked first.
	f.repos.status = RepoStatus{Reason: ReasonMissing}
	res := f.engine.Review(context.Background(), trackedRecord("::not-a-url"))
	if res.Kind != KindTagError {
		t.Fatalf("expected tag-error, got %s", res.Kind)
	}
	if !reflect.DeepEqual(res.Violations, f.tags.violations) {
		t.Fatalf("details must equal the validator output, got %v", res.Violations)
	}
	if f.repos.calls != 0 || f.labels.calls != 0 {
		t.Fatal("remote checks must not run after a tag error")
	}
}

func TestReview_URLError(t *testing.T) {
	tests := []struct {
		name string
		link string
	}{
		{"malformed URI", "::bad"},
		{"unsupported scheme", "ftp://example.org/x"},
		{"missing host", "https:///labels/help"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			res := f.engine.Review(context.Background(), trackedRecord(tt.link))
			if res.Kind != KindURLError {
				t.Fatalf("expected url-error, got %s", res.Kind)
			}
			if res.URL != tt.link {
				t.Fatalf("result must carry the offending URL, got %q", res.URL)
			}
			if f.repos.calls != 0 {
				t.Fatal("remote checks must not run after a URL error")
			}
		})
	}
}

func TestReview_RepositoryStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   RepoStatus
		wantKind Kind
		wantIn   string
	}{
		{
			name:     "archived",
			status:   RepoStatus{Reason: ReasonArchived},
			wantKind: KindRepositoryError,
			wantIn:   "marked as archived",
		},
		{
			name:     "missing",
			status:   RepoStatus{Reason: ReasonMissing},
			wantKind: KindRepositoryError,
			wantIn:   "confirm the repository location",
		},
		{
			name:     "redirect",
			status:   RepoStatus{Reason: ReasonRedirect, OldLocation: "acme/example", NewLocation: "acme/renamed"},
			wantKind: KindRepositoryError,
			wantIn:   "now lives at 'acme/renamed'",
		},
		{
			name:     "error carries detail",
			status:   RepoStatus{Reason: ReasonError, Detail: "503 Service Unavailable"},
			wantKind: KindRepositoryError,
			wantIn:   "503 Service Unavailable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.repos.status = tt.status

			res := f.engine.Review(context.Background(), trackedRecord(canonicalLink))
			if res.Kind != tt.wantKind {
				t.Fatalf("expected %s, got %s", tt.wantKind, res.Kind)
			}
			if !strings.Contains(res.Message, tt.wantIn) {
				t.Fatalf("message %q should contain %q", res.Message, tt.wantIn)
			}
			if f.labels.calls != 0 {
				t.Fatal("label check must not run after a repository error")
			}
		})
	}
}

func TestReview_RateLimitedIsInconclusive(t *testing.T) {
	t.Run("repository check", func(t *testing.T) {
		f := newFixture()
		// The advisory reason must be ignored outright.
		f.repos.status = RepoStatus{RateLimited: true, Reason: ReasonArchived}
		f.labels.status = LabelStatus{Reason: ReasonOK, URL: canonicalLink}

		res := f.engine.Review(context.Background(), trackedRecord(canonicalLink))
		if res.Kind != KindValid {
			t.Fatalf("rate-limited repository check must pass, got %s (%+v)", res.Kind, res)
		}
		if f.labels.calls != 1 {
			t.Fatal("label check should still run after a rate-limited repository check")
		}
	})

	t.Run("label check", func(t *testing.T) {
		f := newFixture()
		f.labels.status = LabelStatus{RateLimited: true, Reason: ReasonMissing}

		res := f.engine.Review(context.Background(), trackedRecord(canonicalLink))
		if res.Kind != KindValid {
			t.Fatalf("rate-limited label check must pass, got %s (%+v)", res.Kind, res)
		}
	})
}

func TestReview_LabelStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status LabelStatus
		wantIn string
	}{
		{
			name:   "error carries detail",
			status: LabelStatus{Reason: ReasonError, Detail: "connection reset"},
			wantIn: "connection reset",
		},
		{
			name:   "repository missing",
			status: LabelStatus{Reason: ReasonRepositoryMissing},
			wantIn: "confirm the repository reference",
		},
		{
			name:   "label missing names label and label list",
			status: LabelStatus{Reason: ReasonMissing},
			wantIn: "Label 'help wanted' was not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.labels.status = tt.status

			res := f.engine.Review(context.Background(), trackedRecord(canonicalLink))
			if res.Kind != KindLabelError {
				t.Fatalf("expected label-error, got %s", res.Kind)
			}
			if !strings.Contains(res.Message, tt.wantIn) {
				t.Fatalf("message %q should contain %q", res.Message, tt.wantIn)
			}
		})
	}
}

func TestReview_LabelLinkMismatch(t *testing.T) {
	canonical := "https://github.com/acme/example/labels/help%20wanted"

	t.Run("label-scoped link must match canonical URL", func(t *testing.T) {
		f := newFixture()
		f.labels.status = LabelStatus{Reason: ReasonOK, URL: canonical}

		res := f.engine.Review(context.Background(),
			trackedRecord("https://github.com/acme/example/labels/help-wanted"))
		if res.Kind != KindLabelError {
			t.Fatalf("expected label-error, got %s", res.Kind)
		}
		if !strings.Contains(res.Message, canonical) {
			t.Fatalf("message should cite the canonical URL, got %q", res.Message)
		}
	})

	t.Run("plain repository link is acceptable", func(t *testing.T) {
		f := newFixture()
		f.labels.status = LabelStatus{Reason: ReasonOK, URL: canonical}

		res := f.engine.Review(context.Background(), trackedRecord("https://github.com/acme/example"))
		if res.Kind != KindValid {
			t.Fatalf("expected valid, got %s (%+v)", res.Kind, res)
		}
	})

	t.Run("matching canonical link is acceptable", func(t *testing.T) {
		f := newFixture()
		f.labels.status = LabelStatus{Reason: ReasonOK, URL: canonical}

		res := f.engine.Review(context.Background(), trackedRecord(canonical))
		if res.Kind != KindValid {
			t.Fatalf("expected valid, got %s (%+v)", res.Kind, res)
		}
	})
}

func TestReview_Deterministic(t *testing.T) {
	f := newFixture()
	f.labels.status = LabelStatus{Reason: ReasonMissing}
	rec := trackedRecord(canonicalLink)

	first := f.engine.Review(context.Background(), rec)
	for i := 0; i < 5; i++ {
		if again := f.engine.Review(context.Background(), rec); !reflect.DeepEqual(first, again) {
			t.Fatalf("results differ between runs:\n%+v\nvs\n%+v", first, again)
		}
	}
}
