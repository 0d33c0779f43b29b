package util

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_WaitWithinBurst(t *testing.T) {
	// 10 tokens per second, burst of 2
	l := NewLimiter(10, 2)

	start := time.Now()
	if err := l.Wait(context.Background(), 2); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Error("burst tokens must be available without blocking")
	}
}

func TestLimiter_WaitBlocksWhenExhausted(t *testing.T) {
	l := NewLimiter(100, 1)
	if err := l.Wait(context.Background(), 1); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	start := time.Now()
	if err := l.Wait(context.Background(), 1); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("Wait returned before a token was refilled")
	}
}

func TestLimiter_WaitRespectsDeadline(t *testing.T) {
	// One token every ten seconds; after the burst the deadline can
	// never be met.
	l := NewLimiter(0.1, 1)
	if err := l.Wait(context.Background(), 1); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, 1); err == nil {
		t.Error("expected an error when the deadline cannot be met")
	}
}
