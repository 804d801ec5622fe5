package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"

	"listlint/internal/review"
)

// StatusClient implements the two remote status checks of the review engine
// on top of the GitHub API. Both checks share one RequestBudget: once the
// quota is observed exhausted, every later check in the run reports itself
// rate-limited without touching the network.
type StatusClient struct {
	client *Client
	budget *RequestBudget
}

func NewStatusClient(client *Client, budget *RequestBudget) *StatusClient {
	return &StatusClient{client: client, budget: budget}
}

// Budget exposes the shared request budget, mainly for the CLI to report
// quota state after a run.
func (c *StatusClient) Budget() *RequestBudget {
	return c.budget
}

// CheckRepository reports whether owner/name exists, is archived, or has
// moved. A context deadline counts as rate-limited so a slow run degrades to
// inconclusive instead of flagging healthy projects.
func (c *StatusClient) CheckRepository(ctx context.Context, owner, name string) review.RepoStatus {
	if c.budget.Exhausted() {
		return review.RepoStatus{RateLimited: true}
	}

	repo, resp, err := c.client.Client.Repositories.Get(ctx, owner, name)
	if resp != nil {
		c.budget.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		if c.observeRateLimit(ctx, err) {
			return review.RepoStatus{RateLimited: true}
		}
		if isNotFound(err) {
			return review.RepoStatus{Reason: review.ReasonMissing}
		}
		return review.RepoStatus{Reason: review.ReasonError, Detail: err.Error()}
	}

	if repo.GetArchived() {
		return review.RepoStatus{Reason: review.ReasonArchived}
	}

	declared := owner + "/" + name
	if full := repo.GetFullName(); full != "" && !strings.EqualFold(full, declared) {
		return review.RepoStatus{
			Reason:      review.ReasonRedirect,
			OldLocation: declared,
			NewLocation: full,
		}
	}

	return review.RepoStatus{Reason: review.ReasonOK}
}

// CheckLabel reports whether the given label exists on owner/name, carrying
// the label's canonical URL on success. The label comparison is
// case-insensitive, matching how GitHub treats label names.
func (c *StatusClient) CheckLabel(ctx context.Context, owner, name, label string) review.LabelStatus {
	if c.budget.Exhausted() {
		return review.LabelStatus{RateLimited: true}
	}

	opt := &github.ListOptions{PerPage: 100}
	for {
		labels, resp, err := c.client.Client.Issues.ListLabels(ctx, owner, name, opt)
		if resp != nil {
			c.budget.UpdateFromResponse(resp.Response)
		}
		if err != nil {
			if c.observeRateLimit(ctx, err) {
				return review.LabelStatus{RateLimited: true}
			}
			if isNotFound(err) {
				return review.LabelStatus{Reason: review.ReasonRepositoryMissing}
			}
			return review.LabelStatus{Reason: review.ReasonError, Detail: err.Error()}
		}

		for _, l := range labels {
			if strings.EqualFold(l.GetName(), label) {
				return review.LabelStatus{
					Reason: review.ReasonOK,
					URL:    CanonicalLabelURL(owner, name, l.GetName()),
				}
			}
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return review.LabelStatus{Reason: review.ReasonMissing}
}

// CanonicalLabelURL builds the browser URL for a label, with the label name
// escaped the way GitHub renders it.
func CanonicalLabelURL(owner, name, label string) string {
	return fmt.Sprintf("https://github.com/%s/%s/labels/%s", owner, name, url.PathEscape(label))
}

// observeRateLimit recognizes quota exhaustion (primary and secondary rate
// limits) and context expiry, marking the shared budget where applicable.
// Both downgrade the check to inconclusive.
func (c *StatusClient) observeRateLimit(ctx context.Context, err error) bool {
	var rle *github.RateLimitError
	if errors.As(err, &rle) {
		c.budget.MarkExhausted(rle.Rate.Reset.Time)
		return true
	}

	var arle *github.AbuseRateLimitError
	if errors.As(err, &arle) {
		var reset time.Time
		if arle.RetryAfter != nil {
			reset = time.Now().Add(*arle.RetryAfter)
		}
		c.budget.MarkExhausted(reset)
		return true
	}

	return ctx.Err() != nil
}

func isNotFound(err error) bool {
	var er *github.ErrorResponse
	return errors.As(err, &er) && er.Response != nil && er.Response.StatusCode == 404
}
