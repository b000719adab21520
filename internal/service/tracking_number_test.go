package service

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestTrackingNumberFormat(t *testing.T) {
	gen := NewTrackingNumberGenerator("PKG", 6, 10).
		WithRandSource(rand.NewSource(42)).
		WithClock(fixedClock(t))

	number, err := gen.Generate(func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	pattern := regexp.MustCompile(`^PKG20250314[A-Z0-9]{6}$`)
	if !pattern.MatchString(number) {
		t.Fatalf("unexpected tracking number format: %s", number)
	}
}

func TestTrackingNumberDefaults(t *testing.T) {
	gen := NewTrackingNumberGenerator("", 0, 0).
		WithRandSource(rand.NewSource(1)).
		WithClock(fixedClock(t))

	number, err := gen.Generate(func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	pattern := regexp.MustCompile(`^PKG\d{8}[A-Z0-9]{6}$`)
	if !pattern.MatchString(number) {
		t.Fatalf("defaults should produce PKG+date+6 chars, got %s", number)
	}
}

func TestTrackingNumberRetriesOnCollision(t *testing.T) {
	gen := NewTrackingNumberGenerator("PKG", 6, 10).
		WithRandSource(rand.NewSource(7)).
		WithClock(fixedClock(t))

	calls := 0
	number, err := gen.Generate(func(candidate string) (bool, error) {
		calls++
		return calls <= 2, nil
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected two collisions then success, got %d calls", calls)
	}
	if number == "" {
		t.Fatalf("generated number should not be empty")
	}
}

func TestTrackingNumberExhausted(t *testing.T) {
	gen := NewTrackingNumberGenerator("PKG", 6, 3).
		WithRandSource(rand.NewSource(7)).
		WithClock(fixedClock(t))

	calls := 0
	_, err := gen.Generate(func(string) (bool, error) {
		calls++
		return true, nil
	})
	if !errors.Is(err, ErrTrackingNumberExhausted) {
		t.Fatalf("expected ErrTrackingNumberExhausted, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected exactly maxAttempts calls, got %d", calls)
	}
}

func TestTrackingNumberUniqueAcrossMany(t *testing.T) {
	gen := NewTrackingNumberGenerator("PKG", 6, 1000).
		WithRandSource(rand.NewSource(99)).
		WithClock(fixedClock(t))

	seen := make(map[string]struct{}, 10000)
	exists := func(candidate string) (bool, error) {
		_, taken := seen[candidate]
		return taken, nil
	}
	for i := 0; i < 10000; i++ {
		number, err := gen.Generate(exists)
		if err != nil {
			t.Fatalf("generate #%d failed: %v", i, err)
		}
		if _, dup := seen[number]; dup {
			t.Fatalf("generator returned a taken number: %s", number)
		}
		seen[number] = struct{}{}
	}
	if len(seen) != 10000 {
		t.Fatalf("expected 10000 unique numbers, got %d", len(seen))
	}
}
