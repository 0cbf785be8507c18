package usecase

import (
	"math"

	"main/model"
)

// AdherenceRate computes the percentage of doses taken versus all resolved
// doses. Pending doses are excluded from the denominator. Returns 0 when no
// dose has been resolved yet.
func AdherenceRate(records []model.DoseRecord) int {
	taken := 0
	missed := 0
	for _, r := range records {
		switch r.Status {
		case model.DoseTaken:
			taken++
		case model.DoseMissed:
			missed++
		}
	}

	total := taken + missed
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(taken) / float64(total) * 100))
}

// CountTaken counts the taken records across the full history.
func CountTaken(records []model.DoseRecord) int {
	taken := 0
	for _, r := range records {
		if r.Status == model.DoseTaken {
			taken++
		}
	}
	return taken
}
