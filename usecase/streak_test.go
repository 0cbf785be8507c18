package usecase

import (
	"testing"
	"time"

	"main/model"
)

func day(now time.Time, daysAgo int, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location()).AddDate(0, 0, -daysAgo)
}

func takenOn(now time.Time, daysAgo int) model.DoseRecord {
	return model.DoseRecord{
		MedicineID:    "med-1",
		UserID:        "user-1",
		TakenAt:       day(now, daysAgo, 9),
		ScheduledTime: "09:00",
		Status:        model.DoseTaken,
	}
}

func missedOn(now time.Time, daysAgo int) model.DoseRecord {
	r := takenOn(now, daysAgo)
	r.Status = model.DoseMissed
	return r
}

func TestCalculateStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		records     []model.DoseRecord
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "no records",
			records:     nil,
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name: "five consecutive days all taken",
			records: []model.DoseRecord{
				takenOn(now, 0), takenOn(now, 1), takenOn(now, 2), takenOn(now, 3), takenOn(now, 4),
			},
			wantCurrent: 5,
			wantLongest: 5,
		},
		{
			name: "missed day breaks the current run",
			records: []model.DoseRecord{
				takenOn(now, 0), takenOn(now, 1),
				missedOn(now, 2),
				takenOn(now, 3), takenOn(now, 4), takenOn(now, 5),
			},
			wantCurrent: 2,
			wantLongest: 3,
		},
		{
			name: "day without any record keeps the run alive",
			records: []model.DoseRecord{
				takenOn(now, 0), takenOn(now, 1),
				// nothing scheduled two days ago
				takenOn(now, 3), takenOn(now, 4),
			},
			wantCurrent: 4,
			wantLongest: 4,
		},
		{
			name: "mixed day does not count toward the streak",
			records: []model.DoseRecord{
				takenOn(now, 0),
				takenOn(now, 1), missedOn(now, 1),
				takenOn(now, 2),
			},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name: "old streak longer than current",
			records: []model.DoseRecord{
				takenOn(now, 0),
				missedOn(now, 1),
				takenOn(now, 2), takenOn(now, 3), takenOn(now, 4), takenOn(now, 5),
			},
			wantCurrent: 1,
			wantLongest: 4,
		},
		{
			name: "malformed records are ignored",
			records: []model.DoseRecord{
				takenOn(now, 0),
				{MedicineID: "med-1", UserID: "user-1", Status: model.DoseTaken}, // zero TakenAt
				{MedicineID: "med-1", UserID: "user-1", TakenAt: day(now, 1, 9), Status: "unknown"},
			},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name: "records beyond the lookback window are not counted",
			records: []model.DoseRecord{
				takenOn(now, 0),
				takenOn(now, 400),
			},
			wantCurrent: 1,
			wantLongest: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := CalculateStreak(tt.records, now)
			if current != tt.wantCurrent {
				t.Errorf("CalculateStreak() current = %d, want %d", current, tt.wantCurrent)
			}
			if longest != tt.wantLongest {
				t.Errorf("CalculateStreak() longest = %d, want %d", longest, tt.wantLongest)
			}
		})
	}
}

func TestCalculateStreakMultipleMedicinesSameDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	other := takenOn(now, 0)
	other.MedicineID = "med-2"
	other.ScheduledTime = "21:00"

	records := []model.DoseRecord{takenOn(now, 0), other, takenOn(now, 1)}

	current, longest := CalculateStreak(records, now)
	if current != 2 || longest != 2 {
		t.Errorf("CalculateStreak() = (%d, %d), want (2, 2)", current, longest)
	}
}
