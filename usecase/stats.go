package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/utils"
)

// DoseProvider supplies the full dose history for a user or profile.
type DoseProvider interface {
	ListDoseRecords(ctx context.Context, userID string) ([]model.DoseRecord, error)
}

// StatsStore persists UserStats snapshots. GetStats returns nil, nil when no
// snapshot exists yet.
type StatsStore interface {
	GetStats(ctx context.Context, userID string) (*model.UserStats, error)
	SaveStats(ctx context.Context, stats *model.UserStats) error
}

// NotificationSink receives achievement unlock notifications. Failures are
// logged, not propagated; notifications are fire-and-forget here.
type NotificationSink interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
}

// StatsService runs a full adherence recompute for one user: counts, rate,
// streaks, level and achievement unlocks, then persists the snapshot.
// Callers must not run two recomputes for the same user concurrently; the
// service assumes at-most-one-writer per user and does no optimistic check
// on write.
type StatsService struct {
	Doses    DoseProvider
	Stats    StatsStore
	Notifier NotificationSink

	// Now is the time source for the streak walk; defaults to time.Now.
	Now func() time.Time
}

func NewStatsService(doses DoseProvider, stats StatsStore, notifier NotificationSink) *StatsService {
	return &StatsService{
		Doses:    doses,
		Stats:    stats,
		Notifier: notifier,
		Now:      time.Now,
	}
}

// GetStats returns the stored snapshot, creating and persisting a zero-valued
// one the first time a user has none.
func (svc *StatsService) GetStats(ctx context.Context, userID string) (*model.UserStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	stats, err := svc.Stats.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		return stats, nil
	}

	stats = model.NewUserStats(userID, svc.now())
	if err := svc.Stats.SaveStats(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Recompute rebuilds the stats snapshot from the full dose history and
// persists it. On a save failure the freshly computed stats are returned
// together with the error so the caller can retry the save on its own
// schedule; in-memory state is never lost to a persistence fault.
func (svc *StatsService) Recompute(ctx context.Context, userID string) (*model.UserStats, []model.Achievement, error) {
	if userID == "" {
		return nil, nil, fmt.Errorf("user ID is required")
	}

	records, err := svc.Doses.ListDoseRecords(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dose records: %w", err)
	}

	previous, err := svc.Stats.GetStats(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stats: %w", err)
	}

	now := svc.now()
	if previous == nil {
		previous = model.NewUserStats(userID, now)
	}

	candidate := *previous
	candidate.TotalMedicinesTaken = CountTaken(records)
	candidate.AdherenceRate = AdherenceRate(records)

	current, longest := CalculateStreak(records, now)
	candidate.CurrentStreak = current
	if longest > candidate.LongestStreak {
		candidate.LongestStreak = longest
	}

	updated, unlocked := EvaluateAchievements(candidate)
	updated.Level = LevelForPoints(updated.TotalPoints)
	updated.LastUpdated = now

	svc.notifyUnlocks(ctx, userID, unlocked)

	if err := svc.Stats.SaveStats(ctx, &updated); err != nil {
		utils.StatsRecomputesTotal.WithLabelValues("save_failed").Inc()
		return &updated, unlocked, fmt.Errorf("failed to save stats: %w", err)
	}

	utils.StatsRecomputesTotal.WithLabelValues("success").Inc()
	return &updated, unlocked, nil
}

func (svc *StatsService) notifyUnlocks(ctx context.Context, userID string, unlocked []model.Achievement) {
	for _, achievement := range unlocked {
		utils.AchievementsUnlockedTotal.Inc()

		notification := &model.Notification{
			UserID:    userID,
			Title:     "🏆 New Achievement Unlocked!",
			Message:   fmt.Sprintf("%s %s: %s (+%d points)", achievement.Icon, achievement.Name, achievement.Description, achievement.Points),
			Type:      model.NotificationSuccess,
			IsRead:    false,
			CreatedAt: svc.now(),
		}

		if err := svc.Notifier.CreateNotification(ctx, notification); err != nil {
			utils.TrackError("notification", "achievement_notify_failed")
			log.Printf("Warning: failed to notify achievement %s for user %s: %v", achievement.ID, userID, err)
		}
	}
}

func (svc *StatsService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
