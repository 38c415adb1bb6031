package providers

import (
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(err)
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestAsRateLimitErrorUnwrapsWrapped(t *testing.T) {
	inner := &RateLimitError{Provider: "espn", StatusCode: 429, RetryAfter: 5 * time.Second}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	rl, ok := AsRateLimitError(wrapped)
	if !ok || rl.RetryAfter != 5*time.Second {
		t.Fatalf("expected wrapped rate limit error, got %v ok=%v", rl, ok)
	}

	if _, ok := AsRateLimitError(fmt.Errorf("plain")); ok {
		t.Fatalf("expected no rate limit error for plain error")
	}
}
