package service

import (
	"errors"
	"mindmate_backend/internal/util"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextStreakFirstCheckin(t *testing.T) {
	streak, err := NextStreak(nil, day("2026-03-10"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 1 {
		t.Errorf("expected streak 1, got %d", streak)
	}
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	last := day("2026-03-10")
	streak, err := NextStreak(&last, day("2026-03-11"), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 5 {
		t.Errorf("expected streak 5, got %d", streak)
	}
}

func TestNextStreakSameDay(t *testing.T) {
	last := day("2026-03-10")
	streak, err := NextStreak(&last, day("2026-03-10"), 4)
	if !errors.Is(err, util.ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}
	if streak != 4 {
		t.Errorf("streak should be unchanged, got %d", streak)
	}
}

func TestNextStreakGapResets(t *testing.T) {
	last := day("2026-03-10")
	streak, err := NextStreak(&last, day("2026-03-14"), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 1 {
		t.Errorf("expected reset to 1, got %d", streak)
	}
}

func TestNextStreakClockRollback(t *testing.T) {
	// 时钟回拨不是连续签到，按重置处理
	last := day("2026-03-10")
	streak, err := NextStreak(&last, day("2026-03-08"), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 1 {
		t.Errorf("expected reset to 1, got %d", streak)
	}
}

func TestNextStreakSameDayDifferentClock(t *testing.T) {
	// 同一天内不同时刻仍算同一天
	last := day("2026-03-10").Add(8 * time.Hour)
	_, err := NextStreak(&last, day("2026-03-10").Add(22*time.Hour), 2)
	if !errors.Is(err, util.ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}
}
