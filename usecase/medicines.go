package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

type MedicinesService struct {
	MedicinesRepo *repository.MedicinesRepo
	DosesRepo     *repository.DosesRepo
	Interactions  *InteractionService
	Notifier      NotificationSink
}

func NewMedicinesService(medicinesRepo *repository.MedicinesRepo, dosesRepo *repository.DosesRepo, interactions *InteractionService, notifier NotificationSink) *MedicinesService {
	return &MedicinesService{
		MedicinesRepo: medicinesRepo,
		DosesRepo:     dosesRepo,
		Interactions:  interactions,
		Notifier:      notifier,
	}
}

// Get the user's medicines, active first then by name
func (svc *MedicinesService) GetUserMedicines(ctx context.Context, userID string) ([]*model.Medicine, error) {
	medicines, err := svc.MedicinesRepo.GetUserMedicines(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(medicines, func(i, j int) bool {
		if medicines[i].IsActive != medicines[j].IsActive {
			return medicines[i].IsActive
		}
		return medicines[i].Name < medicines[j].Name
	})

	return medicines, nil
}

// AddMedicine validates and stores a new medicine, then checks it against
// the user's other active medicines and raises a warning notification per
// detected interaction.
func (svc *MedicinesService) AddMedicine(ctx context.Context, medicine *model.Medicine) ([]model.DrugInteraction, error) {
	if medicine.UserID == "" {
		return nil, errors.New("user ID is required")
	}
	if medicine.Name == "" {
		return nil, errors.New("medicine name is required")
	}

	for _, t := range medicine.Times {
		if !utils.ValidateClockTime(t) {
			return nil, fmt.Errorf("invalid scheduled time %q, expected HH:MM", t)
		}
	}

	if !medicine.EndDate.IsZero() && !medicine.StartDate.IsZero() && medicine.EndDate.Before(medicine.StartDate) {
		return nil, errors.New("end date cannot be before start date")
	}

	now := time.Now()
	if medicine.MedicineID == "" {
		medicine.MedicineID = uuid.New().String()
	}
	if medicine.StartDate.IsZero() {
		medicine.StartDate = now
	}
	medicine.CreatedAt = now
	medicine.UpdatedAt = now

	active, err := svc.MedicinesRepo.GetActiveMedicines(ctx, medicine.UserID)
	if err != nil {
		return nil, err
	}

	if err := svc.MedicinesRepo.CreateMedicine(ctx, medicine); err != nil {
		return nil, err
	}
	utils.TrackMedicineOperation("create")

	names := make([]string, 0, len(active)+1)
	for _, m := range active {
		names = append(names, m.Name)
	}
	names = append(names, medicine.Name)

	interactions := svc.Interactions.CheckInteractions(names)
	svc.warnInteractions(ctx, medicine.UserID, medicine.Name, interactions)

	return interactions, nil
}

// UpdateMedicine applies field updates to an existing medicine
func (svc *MedicinesService) UpdateMedicine(ctx context.Context, medicineID string, userID string, updates *model.Medicine) (*model.Medicine, error) {
	existing, err := svc.MedicinesRepo.GetMedicineByID(ctx, medicineID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("medicine not found")
	}

	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.Dosage != "" {
		existing.Dosage = updates.Dosage
	}
	if updates.Frequency != "" {
		existing.Frequency = updates.Frequency
	}
	if updates.Times != nil {
		for _, t := range updates.Times {
			if !utils.ValidateClockTime(t) {
				return nil, fmt.Errorf("invalid scheduled time %q, expected HH:MM", t)
			}
		}
		existing.Times = updates.Times
	}
	if !updates.StartDate.IsZero() {
		existing.StartDate = updates.StartDate
	}
	if !updates.EndDate.IsZero() {
		if existing.StartDate.After(updates.EndDate) {
			return nil, errors.New("end date cannot be before start date")
		}
		existing.EndDate = updates.EndDate
	}
	if updates.Notes != "" {
		existing.Notes = updates.Notes
	}
	if updates.Color != "" {
		existing.Color = updates.Color
	}
	existing.IsActive = updates.IsActive
	existing.UpdatedAt = time.Now()

	if err := svc.MedicinesRepo.UpdateMedicine(ctx, medicineID, userID, existing); err != nil {
		return nil, err
	}
	utils.TrackMedicineOperation("update")

	return existing, nil
}

// ToggleActive flips the active flag
func (svc *MedicinesService) ToggleActive(ctx context.Context, medicineID string, userID string) (bool, error) {
	active, err := svc.MedicinesRepo.ToggleActive(ctx, medicineID, userID)
	if err != nil {
		return false, err
	}
	utils.TrackMedicineOperation("toggle")
	return active, nil
}

// DeleteMedicine removes a medicine together with its dose history
func (svc *MedicinesService) DeleteMedicine(ctx context.Context, medicineID string, userID string) error {
	existing, err := svc.MedicinesRepo.GetMedicineByID(ctx, medicineID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("medicine not found")
	}

	if err := svc.MedicinesRepo.DeleteMedicine(ctx, medicineID, userID); err != nil {
		return err
	}
	utils.TrackMedicineOperation("delete")

	if err := svc.DosesRepo.DeleteMedicineDoses(ctx, medicineID, userID); err != nil {
		// The medicine itself is gone; orphaned dose rows only skew
		// history, so log and carry on.
		log.Printf("Warning: failed to delete doses for medicine %s: %v", medicineID, err)
	}

	return nil
}

func (svc *MedicinesService) warnInteractions(ctx context.Context, userID, medicineName string, interactions []model.DrugInteraction) {
	for _, interaction := range interactions {
		notification := &model.Notification{
			UserID:  userID,
			Title:   "⚠️ Possible Drug Interaction",
			Message: fmt.Sprintf("%s and %s: %s %s", interaction.Drug1, interaction.Drug2, interaction.Description, interaction.Recommendation),
			Type:    model.NotificationWarning,
			IsRead:  false,
		}
		if err := svc.Notifier.CreateNotification(ctx, notification); err != nil {
			utils.TrackError("notification", "interaction_notify_failed")
			log.Printf("Warning: failed to notify interaction for %s: %v", medicineName, err)
		}
	}
}
