package service

import (
	"context"
	"testing"
	"time"
)

func TestLoginLimiterBlocksAfterMaxFailures(t *testing.T) {
	limiter := NewLoginLimiter(nil, 5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := limiter.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
		blocked, err := limiter.Blocked(ctx, "alice")
		if err != nil {
			t.Fatalf("Blocked: %v", err)
		}
		if blocked {
			t.Fatalf("blocked after %d failures, want threshold 5", i+1)
		}
	}

	if err := limiter.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	blocked, err := limiter.Blocked(ctx, "alice")
	if err != nil {
		t.Fatalf("Blocked: %v", err)
	}
	if !blocked {
		t.Error("expected blocked after 5 failures")
	}
}

func TestLoginLimiterIsolatesIdentifiers(t *testing.T) {
	limiter := NewLoginLimiter(nil, 5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		limiter.RecordFailure(ctx, "alice")
	}
	blocked, _ := limiter.Blocked(ctx, "bob")
	if blocked {
		t.Error("bob should not be blocked by alice's failures")
	}
}

func TestLoginLimiterResetClearsHistory(t *testing.T) {
	limiter := NewLoginLimiter(nil, 5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		limiter.RecordFailure(ctx, "alice")
	}
	if blocked, _ := limiter.Blocked(ctx, "alice"); !blocked {
		t.Fatal("expected blocked before reset")
	}

	if err := limiter.Reset(ctx, "alice"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if blocked, _ := limiter.Blocked(ctx, "alice"); blocked {
		t.Error("expected unblocked after reset")
	}
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	limiter := NewLoginLimiter(nil, 2, 30*time.Millisecond)
	ctx := context.Background()

	limiter.RecordFailure(ctx, "alice")
	limiter.RecordFailure(ctx, "alice")
	if blocked, _ := limiter.Blocked(ctx, "alice"); !blocked {
		t.Fatal("expected blocked inside window")
	}

	time.Sleep(50 * time.Millisecond)
	if blocked, _ := limiter.Blocked(ctx, "alice"); blocked {
		t.Error("expected attempts outside window to be dropped")
	}
}

func TestLoginLimiterDefaults(t *testing.T) {
	limiter := NewLoginLimiter(nil, 0, 0)
	if limiter.maxAttempts != 5 {
		t.Errorf("default maxAttempts = %d, want 5", limiter.maxAttempts)
	}
	if limiter.window != 15*time.Minute {
		t.Errorf("default window = %v, want 15m", limiter.window)
	}
}
