package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"main/model"
)

type fakeDoseProvider struct {
	records []model.DoseRecord
	err     error
}

func (f *fakeDoseProvider) ListDoseRecords(ctx context.Context, userID string) ([]model.DoseRecord, error) {
	return f.records, f.err
}

type fakeStatsStore struct {
	stats   *model.UserStats
	saveErr error
	saved   []*model.UserStats
}

func (f *fakeStatsStore) GetStats(ctx context.Context, userID string) (*model.UserStats, error) {
	if f.stats == nil {
		return nil, nil
	}
	copied := *f.stats
	return &copied, nil
}

func (f *fakeStatsStore) SaveStats(ctx context.Context, stats *model.UserStats) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *stats
	f.saved = append(f.saved, &copied)
	f.stats = &copied
	return nil
}

type fakeNotifier struct {
	notifications []*model.Notification
	err           error
}

func (f *fakeNotifier) CreateNotification(ctx context.Context, n *model.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.notifications = append(f.notifications, n)
	return nil
}

func newTestStatsService(doses *fakeDoseProvider, store *fakeStatsStore, notifier *fakeNotifier, now time.Time) *StatsService {
	svc := NewStatsService(doses, store, notifier)
	svc.Now = func() time.Time { return now }
	return svc
}

func TestGetStatsCreatesZeroSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := &fakeStatsStore{}
	svc := newTestStatsService(&fakeDoseProvider{}, store, &fakeNotifier{}, now)

	stats, err := svc.GetStats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if stats.Level != 1 || stats.TotalPoints != 0 || len(stats.Achievements) != 0 {
		t.Errorf("unexpected zero snapshot: %+v", stats)
	}
	if len(store.saved) != 1 {
		t.Errorf("zero snapshot not persisted, saved %d times", len(store.saved))
	}
}

func TestRecomputeUnlocksAndNotifies(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	doses := &fakeDoseProvider{records: []model.DoseRecord{
		takenOn(now, 0), takenOn(now, 1), takenOn(now, 2),
	}}
	store := &fakeStatsStore{}
	notifier := &fakeNotifier{}
	svc := newTestStatsService(doses, store, notifier, now)

	stats, unlocked, err := svc.Recompute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}

	ids := make([]string, len(unlocked))
	for i, a := range unlocked {
		ids[i] = a.ID
	}
	want := []string{"first-dose", "streak-3", "consistency-90"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("unlocked = %v, want %v", ids, want)
	}

	if stats.TotalPoints != 10+25+100 {
		t.Errorf("TotalPoints = %d, want 135", stats.TotalPoints)
	}
	// Level reflects the point total including the unlocks just earned
	if stats.Level != 2 {
		t.Errorf("Level = %d, want 2", stats.Level)
	}
	if stats.CurrentStreak != 3 || stats.LongestStreak != 3 {
		t.Errorf("streaks = (%d, %d), want (3, 3)", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.TotalMedicinesTaken != 3 {
		t.Errorf("TotalMedicinesTaken = %d, want 3", stats.TotalMedicinesTaken)
	}

	if len(notifier.notifications) != len(unlocked) {
		t.Errorf("notifications = %d, want %d", len(notifier.notifications), len(unlocked))
	}
	for _, n := range notifier.notifications {
		if n.Type != model.NotificationSuccess || n.Title == "" {
			t.Errorf("unexpected notification: %+v", n)
		}
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	doses := &fakeDoseProvider{records: []model.DoseRecord{
		takenOn(now, 0), takenOn(now, 1), takenOn(now, 2),
	}}
	store := &fakeStatsStore{}
	svc := newTestStatsService(doses, store, &fakeNotifier{}, now)

	first, _, err := svc.Recompute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("first Recompute() error = %v", err)
	}

	second, unlocked, err := svc.Recompute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("second Recompute() error = %v", err)
	}

	if len(unlocked) != 0 {
		t.Errorf("second run unlocked %v, want none", unlocked)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("snapshots differ between identical runs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestRecomputeLongestStreakNeverShrinks(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	doses := &fakeDoseProvider{records: []model.DoseRecord{takenOn(now, 0)}}
	store := &fakeStatsStore{stats: &model.UserStats{
		UserID:        "user-1",
		LongestStreak: 12,
		Level:         1,
		Achievements:  []string{"first-dose", "streak-3", "streak-7"},
		TotalPoints:   85,
	}}
	svc := newTestStatsService(doses, store, &fakeNotifier{}, now)

	stats, _, err := svc.Recompute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}

	if stats.LongestStreak != 12 {
		t.Errorf("LongestStreak = %d, want 12", stats.LongestStreak)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", stats.CurrentStreak)
	}
}

func TestRecomputeSaveFailureReturnsStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	doses := &fakeDoseProvider{records: []model.DoseRecord{takenOn(now, 0)}}
	store := &fakeStatsStore{saveErr: errors.New("mongo down")}
	svc := newTestStatsService(doses, store, &fakeNotifier{}, now)

	stats, unlocked, err := svc.Recompute(context.Background(), "user-1")
	if err == nil {
		t.Fatal("Recompute() expected error on save failure")
	}
	if stats == nil {
		t.Fatal("Recompute() returned nil stats alongside the save error")
	}
	if stats.TotalMedicinesTaken != 1 {
		t.Errorf("TotalMedicinesTaken = %d, want 1", stats.TotalMedicinesTaken)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "first-dose" {
		t.Errorf("unlocked = %v, want first-dose", unlocked)
	}
}

func TestRecomputeSurvivesNotifierFailure(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	doses := &fakeDoseProvider{records: []model.DoseRecord{takenOn(now, 0)}}
	store := &fakeStatsStore{}
	svc := newTestStatsService(doses, store, &fakeNotifier{err: errors.New("redis down")}, now)

	stats, _, err := svc.Recompute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recompute() error = %v, notifier failures must not propagate", err)
	}
	if len(store.saved) != 1 {
		t.Errorf("snapshot not saved after notifier failure")
	}
	if stats.TotalPoints != 10 {
		t.Errorf("TotalPoints = %d, want 10", stats.TotalPoints)
	}
}

func TestRecomputeRequiresUserID(t *testing.T) {
	svc := newTestStatsService(&fakeDoseProvider{}, &fakeStatsStore{}, &fakeNotifier{}, time.Now())

	if _, _, err := svc.Recompute(context.Background(), ""); err == nil {
		t.Error("Recompute(\"\") expected error")
	}
	if _, err := svc.GetStats(context.Background(), ""); err == nil {
		t.Error("GetStats(\"\") expected error")
	}
}
