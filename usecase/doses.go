package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

type DosesService struct {
	DosesRepo     *repository.DosesRepo
	MedicinesRepo *repository.MedicinesRepo
	Stats         *StatsService
}

func NewDosesService(dosesRepo *repository.DosesRepo, medicinesRepo *repository.MedicinesRepo, stats *StatsService) *DosesService {
	return &DosesService{
		DosesRepo:     dosesRepo,
		MedicinesRepo: medicinesRepo,
		Stats:         stats,
	}
}

// RecordDose stores one dose outcome and runs a stats recompute. The
// recompute result is returned alongside the record; a stats save failure
// comes back as statsErr so the handler can surface it as a warning without
// failing the dose write itself.
func (svc *DosesService) RecordDose(ctx context.Context, record *model.DoseRecord) (stats *model.UserStats, unlocked []model.Achievement, statsErr error, err error) {
	if record.UserID == "" {
		return nil, nil, nil, errors.New("user ID is required")
	}
	if record.MedicineID == "" {
		return nil, nil, nil, errors.New("medicine ID is required")
	}
	if !record.Status.Valid() {
		return nil, nil, nil, fmt.Errorf("invalid dose status %q", record.Status)
	}
	if record.ScheduledTime != "" && !utils.ValidateClockTime(record.ScheduledTime) {
		return nil, nil, nil, fmt.Errorf("invalid scheduled time %q, expected HH:MM", record.ScheduledTime)
	}

	medicine, err := svc.MedicinesRepo.GetMedicineByID(ctx, record.MedicineID, record.UserID)
	if err != nil {
		return nil, nil, nil, err
	}
	if medicine == nil {
		return nil, nil, nil, errors.New("medicine not found")
	}

	now := time.Now()
	if record.DoseID == "" {
		record.DoseID = uuid.New().String()
	}
	if record.TakenAt.IsZero() {
		record.TakenAt = now
	}
	record.CreatedAt = now

	if err := svc.DosesRepo.CreateDoseRecord(ctx, record); err != nil {
		return nil, nil, nil, err
	}

	// Pending doses carry no outcome yet, so the stats stay as they are.
	if record.Status == model.DosePending {
		return nil, nil, nil, nil
	}

	stats, unlocked, statsErr = svc.Stats.Recompute(ctx, record.UserID)
	return stats, unlocked, statsErr, nil
}

// ListDoses returns the full dose history for the user
func (svc *DosesService) ListDoses(ctx context.Context, userID string) ([]model.DoseRecord, error) {
	return svc.DosesRepo.ListDoseRecords(ctx, userID)
}

// ListDosesInRange returns dose records between two instants, newest first
func (svc *DosesService) ListDosesInRange(ctx context.Context, userID string, from, to time.Time) ([]model.DoseRecord, error) {
	if !to.After(from) {
		return nil, errors.New("invalid range: to must be after from")
	}
	return svc.DosesRepo.ListDoseRecordsInRange(ctx, userID, from, to)
}
