package ledger

import (
	"reflect"
	"testing"
)

func TestPickDailyChallengesDeterministic(t *testing.T) {
	first := PickDailyChallenges("2024-03-05")
	if len(first) != DailyChallengeCount {
		t.Fatalf("got %d challenges, want %d", len(first), DailyChallengeCount)
	}
	for i := 0; i < 50; i++ {
		again := PickDailyChallenges("2024-03-05")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: %v != %v (must be stable for a fixed date)", i, again, first)
		}
	}
}

func TestPickDailyChallengesNotConstant(t *testing.T) {
	dates := []string{"2024-03-05", "2024-03-06", "2024-03-07", "2024-04-01", "2025-01-01"}
	base := PickDailyChallenges(dates[0])
	for _, d := range dates[1:] {
		if !reflect.DeepEqual(base, PickDailyChallenges(d)) {
			return
		}
	}
	t.Error("selection identical for all sampled dates; function must not be constant")
}

func TestPickDailyChallengesDistinctEntries(t *testing.T) {
	picked := PickDailyChallenges("2024-03-05")
	seen := map[string]bool{}
	for i, c := range picked {
		if c.Index != i {
			t.Errorf("challenge %d has index %d, want positional index", i, c.Index)
		}
		if c.Text == "" {
			t.Errorf("challenge %d has empty text", i)
		}
		if seen[c.Text] {
			t.Errorf("duplicate challenge %q in one day", c.Text)
		}
		seen[c.Text] = true
	}
}

func TestDateSeedRange(t *testing.T) {
	for _, d := range []string{"2024-03-05", "1970-01-01", "2099-12-31", ""} {
		seed := DateSeed(d)
		if seed < 0 || seed >= 997 {
			t.Errorf("DateSeed(%q) = %d, want [0, 997)", d, seed)
		}
	}
}
