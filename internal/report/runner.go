package report

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"listlint/internal/project"
	"listlint/internal/review"
)

// Reviewer classifies one record; satisfied by *review.Engine.
type Reviewer interface {
	Review(ctx context.Context, rec *project.Record) review.Result
}

// Runner evaluates a batch of project files. Files are independent, so they
// are reviewed concurrently; results land in input order regardless of
// completion order.
type Runner struct {
	reviewer    Reviewer
	concurrency int
}

func NewRunner(reviewer Reviewer, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{reviewer: reviewer, concurrency: concurrency}
}

// Run reviews every file in files (paths relative to root, forward slashes)
// and returns the aggregate Report. One project's failure never prevents
// evaluation of the others; per-file failures are data on the Report, and
// unreadable files are compacted out rather than classified.
func (r *Runner) Run(ctx context.Context, root string, files []string) *Report {
	type slot struct {
		result review.Result
		ok     bool
	}
	slots := make([]slot, len(files))

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			if !strings.EqualFold(filepath.Ext(rel), review.AllowedExtension) {
				slots[i] = slot{result: review.UnsupportedExtension(rel), ok: true}
				return nil
			}

			rec, err := project.Load(filepath.Join(root, filepath.FromSlash(rel)), rel)
			if err != nil {
				// Compacted out: a file that cannot even be opened or
				// parsed is excluded from review entirely.
				return nil
			}

			slots[i] = slot{result: r.reviewer.Review(ctx, rec), ok: true}
			return nil
		})
	}
	// Workers only ever return nil; failures are captured as data.
	_ = g.Wait()

	rep := &Report{}
	for i, s := range slots {
		if !s.ok {
			rep.Skipped = append(rep.Skipped, files[i])
			continue
		}
		rep.Results = append(rep.Results, FileResult{Path: files[i], Result: s.result})
	}
	return rep
}
