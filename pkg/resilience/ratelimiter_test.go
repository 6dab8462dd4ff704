package resilience

import (
	"context"
	"errors"
	"testing"
)

func TestAllowExhaustsBurst(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 0.001, Burst: 2})
	if !l.Allow() || !l.Allow() {
		t.Fatal("expected burst tokens to be available")
	}
	if l.Allow() {
		t.Fatal("expected third request to be limited")
	}
}

func TestZeroRateIsUnlimited(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 0, Burst: 1})
	for i := 0; i < 100; i++ {
		if !l.Allow() {
			t.Fatalf("expected unlimited limiter to allow request %d", i)
		}
	}
}

func TestWaitHonoursContext(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 0.001, Burst: 1})
	l.Allow() // drain the bucket

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestCall(t *testing.T) {
	l := NewLimiter(LimiterOpts{Rate: 0.001, Burst: 1})

	ran := false
	if err := l.Call(context.Background(), func(context.Context) error {
		ran = true
		return nil
	}); err != nil || !ran {
		t.Fatalf("expected first call to run, err=%v ran=%v", err, ran)
	}

	if err := l.Call(context.Background(), func(context.Context) error {
		t.Fatal("must not run when limited")
		return nil
	}); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}
