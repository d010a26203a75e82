package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(1000, 1)
	if err := l.Wait(context.Background(), "https://example.org/a"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
}

func TestLimiter_EnforcesRate(t *testing.T) {
	l := NewLimiter(10, 1)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background(), "https://example.org/a"); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	// burst 1 at 10 rps: two of three calls wait ~100ms each
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("Expected rate limiting, three calls took %v", elapsed)
	}
}

func TestLimiter_PerHost(t *testing.T) {
	l := NewLimiter(1, 1)

	start := time.Now()
	hosts := []string{"https://a.example.org/", "https://b.example.org/", "https://c.example.org/"}
	for _, h := range hosts {
		if err := l.Wait(context.Background(), h); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	// distinct hosts draw from distinct budgets, no waiting
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Expected independent host budgets, calls took %v", elapsed)
	}
}

func TestLimiter_ContextCancel(t *testing.T) {
	l := NewLimiter(0.1, 1)
	// drain the burst
	if err := l.Wait(context.Background(), "https://example.org/"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "https://example.org/"); err == nil {
		t.Error("Expected context error while rate limited")
	}
}
