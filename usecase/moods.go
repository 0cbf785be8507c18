package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

type MoodsService struct {
	MoodsRepo *repository.MoodsRepo
}

func NewMoodsService(moodsRepo *repository.MoodsRepo) *MoodsService {
	return &MoodsService{MoodsRepo: moodsRepo}
}

// SaveMoodEntry validates and upserts the day's mood check-in
func (svc *MoodsService) SaveMoodEntry(ctx context.Context, entry *model.MoodEntry) error {
	if entry.UserID == "" {
		return errors.New("user ID is required")
	}
	if !entry.Mood.Valid() {
		return fmt.Errorf("invalid mood %q", entry.Mood)
	}
	if entry.Energy < 1 || entry.Energy > 5 {
		return errors.New("energy must be between 1 and 5")
	}

	now := time.Now()
	if entry.Date == "" {
		entry.Date = now.Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return errors.New("date must be in YYYY-MM-DD form")
	}

	if entry.EntryID == "" {
		entry.EntryID = uuid.New().String()
	}
	entry.CreatedAt = now

	return svc.MoodsRepo.UpsertMoodEntry(ctx, entry)
}

// GetMoodEntries returns the user's mood history
func (svc *MoodsService) GetMoodEntries(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	return svc.MoodsRepo.ListMoodEntries(ctx, userID)
}

// DeleteMoodEntry removes one entry
func (svc *MoodsService) DeleteMoodEntry(ctx context.Context, entryID string, userID string) error {
	return svc.MoodsRepo.DeleteMoodEntry(ctx, entryID, userID)
}
