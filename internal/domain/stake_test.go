package domain

import (
	"testing"
	"time"
)

func TestRoundAmount_EightDecimals(t *testing.T) {
	if got := RoundAmount(0.1 + 0.2); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if got := RoundAmount(1.234567894); got != 1.23456789 {
		t.Fatalf("expected 1.23456789, got %v", got)
	}
	if got := RoundAmount(1.234567896); got != 1.2345679 {
		t.Fatalf("expected 1.2345679, got %v", got)
	}
}

func TestStakeCapRemaining(t *testing.T) {
	cap := Capped(200)
	if got := cap.Remaining(190.5); got != 9.5 {
		t.Fatalf("expected 9.5 remaining, got %v", got)
	}
	if got := cap.Remaining(200); got != 0 {
		t.Fatalf("expected 0 remaining at cap, got %v", got)
	}
	if got := cap.Remaining(210); got != -10 {
		t.Fatalf("expected negative remaining past cap, got %v", got)
	}
}

func TestDailyYield(t *testing.T) {
	entry := &StakeEntry{Principal: 1000, DailyRate: 0.5}
	if got := entry.DailyYield(); got != 5 {
		t.Fatalf("expected yield 5, got %v", got)
	}
}

func TestRunDayTruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	stamp := time.Date(2025, 3, 10, 1, 30, 0, 0, loc) // 2025-03-09 22:30 UTC

	day := RunDay(stamp)

	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}
}
