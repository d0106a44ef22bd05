package ledger

import "testing"

func TestRecordSessionOpenConsecutiveDays(t *testing.T) {
	s := State{}
	days := []string{"2024-03-05", "2024-03-06", "2024-03-07"}
	for i, day := range days {
		var granted bool
		s, granted = RecordSessionOpen(s, day)
		if s.Streak != i+1 {
			t.Fatalf("day %s: streak = %d, want %d", day, s.Streak, i+1)
		}
		if !granted {
			t.Fatalf("day %s: daily reward not granted", day)
		}
	}
	if s.Points != 3*DailyRewardPoints {
		t.Errorf("points = %d, want %d", s.Points, 3*DailyRewardPoints)
	}
}

func TestRecordSessionOpenGapResetsStreak(t *testing.T) {
	s := State{Streak: 5, LastOpenDate: "2024-03-05"}
	s, _ = RecordSessionOpen(s, "2024-03-08")
	if s.Streak != 1 {
		t.Errorf("streak after 3-day gap = %d, want 1", s.Streak)
	}
	if s.LastOpenDate != "2024-03-08" {
		t.Errorf("lastOpenDate = %q, want 2024-03-08", s.LastOpenDate)
	}
}

func TestRecordSessionOpenSameDayIdempotent(t *testing.T) {
	s := State{}
	s, granted := RecordSessionOpen(s, "2024-03-05")
	if !granted {
		t.Fatal("first open of the day must grant the reward")
	}
	points, streak := s.Points, s.Streak

	s, granted = RecordSessionOpen(s, "2024-03-05")
	if granted {
		t.Error("second open on the same day must not grant the reward again")
	}
	if s.Streak != streak {
		t.Errorf("streak changed on same-day reopen: %d -> %d", streak, s.Streak)
	}
	if s.Points != points {
		t.Errorf("points changed on same-day reopen: %d -> %d", points, s.Points)
	}
}

func TestRecordSessionOpenClockRollback(t *testing.T) {
	// 时钟回拨：连胜不变、不为负，也不重复发奖
	s := State{Streak: 4, Points: 40, LastOpenDate: "2024-03-10", LastClaimDate: "2024-03-10"}
	s, granted := RecordSessionOpen(s, "2024-03-08")
	if s.Streak != 4 {
		t.Errorf("streak = %d, want 4 (unchanged on negative gap)", s.Streak)
	}
	if !granted || s.Points != 40+DailyRewardPoints {
		// 03-08 不等于 lastClaimDate(03-10)，按闸门规则仍会发放一次
		t.Errorf("granted=%v points=%d, want grant once via lastClaimDate gate", granted, s.Points)
	}
}

func TestSetMoodGrantsBonusEveryCall(t *testing.T) {
	s := State{}
	s = SetMood(s, "2024-03-05", MoodHappy)
	s = SetMood(s, "2024-03-05", MoodSad) // 覆盖当天心情，奖励照发
	if s.MoodByDate["2024-03-05"] != MoodSad {
		t.Errorf("mood = %q, want sad (overwrite semantics)", s.MoodByDate["2024-03-05"])
	}
	if s.Points != 2*MoodPoints {
		t.Errorf("points = %d, want %d (bonus re-granted on overwrite)", s.Points, 2*MoodPoints)
	}
}

func TestSaveJournalNoteOverwrites(t *testing.T) {
	s := State{}
	s = SaveJournalNote(s, "2024-03-05", "prima nota")
	s = SaveJournalNote(s, "2024-03-05", "")
	if got := s.JournalByDate["2024-03-05"]; got != "" {
		t.Errorf("journal = %q, want empty string (full replacement)", got)
	}
	if s.Points != 2*JournalPoints {
		t.Errorf("points = %d, want %d", s.Points, 2*JournalPoints)
	}
}

func TestToggleChallenge(t *testing.T) {
	s := State{}
	s, nowDone := ToggleChallenge(s, "2024-03-05", 1)
	if !nowDone || s.Points != ChallengePoints {
		t.Fatalf("toggle on: nowDone=%v points=%d", nowDone, s.Points)
	}

	s, nowDone = ToggleChallenge(s, "2024-03-05", 1)
	if nowDone || s.Points != 0 {
		t.Fatalf("toggle off: nowDone=%v points=%d, want 0", nowDone, s.Points)
	}
	if len(s.ChallengesDoneByDate["2024-03-05"]) != 0 {
		t.Errorf("done set not emptied: %v", s.ChallengesDoneByDate["2024-03-05"])
	}
}

func TestToggleChallengeClampsAtZero(t *testing.T) {
	// 积分在开关之间被其他路径消耗后，取消挑战钳制到 0 而不是变负
	s := State{Points: 0}
	s, _ = ToggleChallenge(s, "2024-03-05", 0) // +5
	s.Points = 3
	s, _ = ToggleChallenge(s, "2024-03-05", 0) // -5 → clamp
	if s.Points != 0 {
		t.Errorf("points = %d, want 0 (clamped, never negative)", s.Points)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-03-05", "2024-03-06", 1},
		{"2024-03-05", "2024-03-05", 0},
		{"2024-03-05", "2024-03-08", 3},
		{"2024-03-10", "2024-03-08", -2},
		{"2024-02-28", "2024-03-01", 2}, // 闰年
		{"not-a-date", "2024-03-05", 0},
	}
	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
