package account

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

type fakeRepo struct {
	mu     sync.Mutex
	latest *store.AccountData
	saves  int
}

func (r *fakeRepo) LatestAccount(_ context.Context, _ string) (*store.AccountData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest == nil {
		return nil, nil
	}
	rec := *r.latest
	return &rec, nil
}

func (r *fakeRepo) SaveAccount(_ context.Context, rec *store.AccountData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := *rec
	r.latest = &snapshot
	r.saves++
	return nil
}

func (r *fakeRepo) PruneAccounts(_ context.Context, _ string, _ int) error { return nil }

func openStore(t *testing.T, repo store.AccountRepo, now func() time.Time) *Store {
	t.Helper()
	s, err := newWithClock(context.Background(), repo, "dd-0412", now)
	if err != nil {
		t.Fatalf("newWithClock: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_SeedsFreshAccount(t *testing.T) {
	s := openStore(t, nil, time.Now)

	rec, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Tokens != StartingTokens {
		t.Errorf("Tokens = %d, want %d", rec.Tokens, StartingTokens)
	}
	if rec.UserID != "dd-0412" {
		t.Errorf("UserID = %q, want dd-0412", rec.UserID)
	}
}

func TestStore_LoadsPersistedRecord(t *testing.T) {
	repo := &fakeRepo{latest: &store.AccountData{
		UserID:    "dd-0412",
		Tokens:    123,
		WeekStart: weekStart(time.Now()),
		Version:   7,
	}}
	s := openStore(t, repo, time.Now)

	rec, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Tokens != 123 || rec.Version != 7 {
		t.Errorf("rec = %+v, want the persisted snapshot", rec)
	}
}

func TestStore_ApplyVersionsAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	s := openStore(t, repo, time.Now)

	rec, err := s.Apply(context.Background(), AddStats(10, 7))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if rec.LifetimeAttempted != 10 || rec.LifetimeCorrect != 7 {
		t.Errorf("lifetime = %d/%d, want 10/7", rec.LifetimeAttempted, rec.LifetimeCorrect)
	}
	if rec.WeekAttempted != 10 || rec.WeekCorrect != 7 {
		t.Errorf("week = %d/%d, want 10/7", rec.WeekAttempted, rec.WeekCorrect)
	}
	if rec.Version != 1 {
		t.Errorf("Version = %d, want 1", rec.Version)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
}

func TestDebitTokens_FlooredAtZero(t *testing.T) {
	s := openStore(t, nil, time.Now)

	rec, err := s.Apply(context.Background(), DebitTokens(StartingTokens+50))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.Tokens != 0 {
		t.Errorf("Tokens = %d, want 0", rec.Tokens)
	}
}

func TestSetTokens_Reconciles(t *testing.T) {
	s := openStore(t, nil, time.Now)

	rec, err := s.Apply(context.Background(), SetTokens(42))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.Tokens != 42 {
		t.Errorf("Tokens = %d, want 42", rec.Tokens)
	}

	if rec, _ = s.Apply(context.Background(), SetTokens(-3)); rec.Tokens != 0 {
		t.Errorf("negative server balance clamped to %d, want 0", rec.Tokens)
	}
}

func TestStore_WeeklyRollover(t *testing.T) {
	// Friday of one ISO week, then the Monday after it.
	friday := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	clock := friday
	s := openStore(t, nil, func() time.Time { return clock })

	rec, err := s.Apply(context.Background(), AddStats(20, 15))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.WeekAttempted != 20 {
		t.Fatalf("WeekAttempted = %d, want 20", rec.WeekAttempted)
	}

	clock = monday
	rec, err = s.Apply(context.Background(), AddStats(5, 5))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if rec.WeekAttempted != 5 || rec.WeekCorrect != 5 {
		t.Errorf("week after rollover = %d/%d, want 5/5", rec.WeekAttempted, rec.WeekCorrect)
	}
	if rec.LifetimeAttempted != 25 {
		t.Errorf("LifetimeAttempted = %d, want 25 (lifetime survives rollover)", rec.LifetimeAttempted)
	}
	if !rec.WeekStart.Equal(weekStart(monday)) {
		t.Errorf("WeekStart = %v, want %v", rec.WeekStart, weekStart(monday))
	}
}

func TestWeekStart_SundayBelongsToPriorMonday(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC)
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if got := weekStart(sunday); !got.Equal(want) {
		t.Errorf("weekStart(sunday) = %v, want %v", got, want)
	}
}

func TestStore_SerializesConcurrentApplies(t *testing.T) {
	s := openStore(t, nil, time.Now)

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := s.Apply(context.Background(), AddStats(1, 1)); err != nil {
					t.Errorf("Apply: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	rec, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.LifetimeAttempted != workers*perWorker {
		t.Errorf("LifetimeAttempted = %d, want %d (lost update)", rec.LifetimeAttempted, workers*perWorker)
	}
	if rec.Version != workers*perWorker {
		t.Errorf("Version = %d, want %d", rec.Version, workers*perWorker)
	}
}
