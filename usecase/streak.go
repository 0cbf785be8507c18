package usecase

import (
	"time"

	"main/model"
)

// Streak computation only looks this far back.
const streakLookbackDays = 365

const dayKeyLayout = "2006-01-02"

// CalculateStreak computes the current and longest consecutive-day streaks
// from a user's dose history. A day counts toward a streak when it has at
// least one record and every record that day is taken. Days with no records
// at all are skipped rather than breaking the run. Records missing a
// timestamp or carrying an unknown status are ignored.
//
// The reference time is a parameter so the walk is deterministic in tests.
func CalculateStreak(records []model.DoseRecord, now time.Time) (currentStreak, longestStreak int) {
	if len(records) == 0 {
		return 0, 0
	}

	byDay := groupByDay(records)
	if len(byDay) == 0 {
		return 0, 0
	}

	run := 0
	frontOpen := true // run is still contiguous with today

	for i := 0; i < streakLookbackDays; i++ {
		day := now.AddDate(0, 0, -i).Format(dayKeyLayout)

		dayRecords, ok := byDay[day]
		if !ok {
			// No doses scheduled that day: neither extends nor breaks.
			continue
		}

		if allTaken(dayRecords) {
			run++
			if frontOpen {
				currentStreak = run
			}
		} else {
			if run > longestStreak {
				longestStreak = run
			}
			run = 0
			frontOpen = false
		}
	}

	if run > longestStreak {
		longestStreak = run
	}

	return currentStreak, longestStreak
}

func groupByDay(records []model.DoseRecord) map[string][]model.DoseRecord {
	byDay := make(map[string][]model.DoseRecord)
	for _, r := range records {
		if r.TakenAt.IsZero() || !r.Status.Valid() {
			// Malformed upstream data, skip rather than abort
			continue
		}
		key := r.TakenAt.Format(dayKeyLayout)
		byDay[key] = append(byDay[key], r)
	}
	return byDay
}

func allTaken(records []model.DoseRecord) bool {
	for _, r := range records {
		if r.Status != model.DoseTaken {
			return false
		}
	}
	return len(records) > 0
}
