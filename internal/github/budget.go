package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RequestBudget tracks the shared request quota across both remote checks in
// one run. Once exhaustion is observed, every later check short-circuits and
// reports itself rate-limited instead of issuing a request that would fail.
//
// Unlike a blocking limiter, the budget never waits: an exhausted quota
// downgrades checks to inconclusive, so nothing in a review run blocks on the
// API recovering.
type RequestBudget struct {
	mu        sync.Mutex
	remaining int // -1 until the first response has been observed
	reset     time.Time
	cooldown  time.Time
	now       func() time.Time
}

func NewRequestBudget() *RequestBudget {
	return &RequestBudget{
		remaining: -1,
		now:       time.Now,
	}
}

// Exhausted reports whether the quota is known to be spent. It returns false
// again once the advertised reset time has passed.
func (b *RequestBudget) Exhausted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if now.Before(b.cooldown) {
		return true
	}
	return b.remaining == 0 && now.Before(b.reset)
}

// MarkExhausted records quota exhaustion observed through an API error (403
// or 429). reset may be zero when the API did not advertise one; a short
// cooldown is assumed so the rest of the run still short-circuits.
func (b *RequestBudget) MarkExhausted(reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.remaining = 0
	if reset.IsZero() {
		reset = b.now().Add(time.Minute)
	}
	if reset.After(b.reset) {
		b.reset = reset
	}
}

// UpdateFromResponse folds the rate-limit headers of an API response into the
// budget.
func (b *RequestBudget) UpdateFromResponse(resp *http.Response) {
	if b == nil || resp == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
			until := b.now().Add(time.Duration(seconds) * time.Second)
			if until.After(b.cooldown) {
				b.cooldown = until
			}
		}
	}

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil && val >= 0 {
			b.remaining = val
		}
	}

	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil && val > 0 {
			b.reset = time.Unix(val, 0)
		}
	}
}
