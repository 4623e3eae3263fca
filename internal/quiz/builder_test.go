package quiz

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func TestBuild_DrawsRequestedCount(t *testing.T) {
	pool := choicePool(10)
	s, err := Build(pool, FlavorMedicine, Config{RequestedCount: 4, TimeBudgetSeconds: 60}, testRand())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Questions) != 4 {
		t.Errorf("len(Questions) = %d, want 4", len(s.Questions))
	}
	if s.Shortfall {
		t.Error("no shortfall expected when pool covers the request")
	}
	if s.ID == "" {
		t.Error("expected a session ID")
	}
	if s.RemainingSeconds != 60 {
		t.Errorf("RemainingSeconds = %d, want 60", s.RemainingSeconds)
	}

	// No duplicates in the draw.
	seen := map[string]bool{}
	for _, q := range s.Questions {
		if seen[q.ID] {
			t.Errorf("question %q drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestBuild_ShortfallTruncatesAndFlags(t *testing.T) {
	s, err := Build(choicePool(3), FlavorMedicine, Config{RequestedCount: 10, TimeBudgetSeconds: 60}, testRand())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Questions) != 3 {
		t.Errorf("len(Questions) = %d, want 3", len(s.Questions))
	}
	if !s.Shortfall {
		t.Error("expected Shortfall flag when pool is smaller than requested")
	}
	if s.Requested != 10 {
		t.Errorf("Requested = %d, want 10", s.Requested)
	}
	if s.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want PhaseRunning", s.Phase)
	}
}

func TestBuild_EmptyPoolFinishesImmediately(t *testing.T) {
	s, err := Build(nil, FlavorMedicine, Config{RequestedCount: 10, TimeBudgetSeconds: 60}, testRand())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if s.Phase != PhaseFinished {
		t.Errorf("Phase = %v, want PhaseFinished", s.Phase)
	}
	if s.Outcome != OutcomeNoQuestions {
		t.Errorf("Outcome = %q, want %q", s.Outcome, OutcomeNoQuestions)
	}
	if _, ok := s.Current(); ok {
		t.Error("Current must report no question for an empty session")
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	_, err := Build(choicePool(3), FlavorMedicine, Config{RequestedCount: 0, TimeBudgetSeconds: 60}, testRand())
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestBuild_ShuffleIsAPermutation(t *testing.T) {
	pool := choicePool(8)
	s, err := Build(pool, FlavorMedicine, Config{RequestedCount: 8, TimeBudgetSeconds: 60}, testRand())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := make([]string, 0, len(s.Questions))
	for _, q := range s.Questions {
		got = append(got, q.ID)
	}
	want := make([]string, 0, len(pool))
	for _, q := range pool {
		want = append(want, q.ID)
	}
	sort.Strings(got)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw is not a permutation of the pool: got %v", got)
		}
	}

	// The source pool order must be untouched.
	for i, q := range pool {
		if q.ID != string(rune('a'+i)) {
			t.Fatalf("pool mutated at %d: %q", i, q.ID)
		}
	}
}

func TestBuild_ShuffleIsRoughlyUniform(t *testing.T) {
	// Drawing 1 of 4 many times: each question should land near 25%.
	pool := choicePool(4)
	rng := rand.New(rand.NewSource(42))

	const trials = 4000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		s, err := Build(pool, FlavorMedicine, Config{RequestedCount: 1, TimeBudgetSeconds: 60}, rng)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		counts[s.Questions[0].ID]++
	}

	for id, n := range counts {
		frac := float64(n) / trials
		if frac < 0.20 || frac > 0.30 {
			t.Errorf("question %q drawn %.1f%% of the time, want ~25%%", id, frac*100)
		}
	}
}
