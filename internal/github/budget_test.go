package github

import (
	"net/http"
	"strconv"
	"testing"
	"time"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBudget_FreshBudgetIsNotExhausted(t *testing.T) {
	b := NewRequestBudget()
	if b.Exhausted() {
		t.Fatal("fresh budget must not report exhaustion")
	}
}

func TestBudget_MarkExhausted(t *testing.T) {
	now := time.Now()
	b := NewRequestBudget()
	b.now = fixedNow(now)

	b.MarkExhausted(now.Add(time.Hour))
	if !b.Exhausted() {
		t.Fatal("budget must report exhaustion after MarkExhausted")
	}

	// Past the advertised reset, the budget recovers.
	b.now = fixedNow(now.Add(2 * time.Hour))
	if b.Exhausted() {
		t.Fatal("budget must recover after the reset time")
	}
}

func TestBudget_MarkExhaustedWithoutReset(t *testing.T) {
	now := time.Now()
	b := NewRequestBudget()
	b.now = fixedNow(now)

	b.MarkExhausted(time.Time{})
	if !b.Exhausted() {
		t.Fatal("budget must assume a cooldown when no reset is advertised")
	}
}

func TestBudget_UpdateFromResponseHeaders(t *testing.T) {
	now := time.Now()
	b := NewRequestBudget()
	b.now = fixedNow(now)

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("X-RateLimit-Remaining", "0")
	resp.Header.Set("X-RateLimit-Reset", strconv.FormatInt(now.Add(time.Hour).Unix(), 10))
	b.UpdateFromResponse(resp)

	if !b.Exhausted() {
		t.Fatal("budget must report exhaustion once headers say remaining=0")
	}

	resp2 := &http.Response{Header: http.Header{}}
	resp2.Header.Set("X-RateLimit-Remaining", "42")
	b.UpdateFromResponse(resp2)

	if b.Exhausted() {
		t.Fatal("budget must recover when headers show remaining quota")
	}
}

func TestBudget_RetryAfterCooldown(t *testing.T) {
	now := time.Now()
	b := NewRequestBudget()
	b.now = fixedNow(now)

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("Retry-After", "30")
	b.UpdateFromResponse(resp)

	if !b.Exhausted() {
		t.Fatal("budget must honor Retry-After cooldowns")
	}

	b.now = fixedNow(now.Add(time.Minute))
	if b.Exhausted() {
		t.Fatal("budget must recover after the cooldown passes")
	}
}
