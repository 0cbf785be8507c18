package usecase

import (
	"testing"

	"main/model"
)

func statusRecords(taken, missed, pending int) []model.DoseRecord {
	var records []model.DoseRecord
	for i := 0; i < taken; i++ {
		records = append(records, model.DoseRecord{Status: model.DoseTaken})
	}
	for i := 0; i < missed; i++ {
		records = append(records, model.DoseRecord{Status: model.DoseMissed})
	}
	for i := 0; i < pending; i++ {
		records = append(records, model.DoseRecord{Status: model.DosePending})
	}
	return records
}

func TestAdherenceRate(t *testing.T) {
	tests := []struct {
		name    string
		taken   int
		missed  int
		pending int
		want    int
	}{
		{name: "no records", want: 0},
		{name: "all taken", taken: 10, want: 100},
		{name: "all missed", missed: 5, want: 0},
		{name: "ten taken two missed rounds up", taken: 10, missed: 2, want: 83},
		{name: "one of three", taken: 1, missed: 2, want: 33},
		{name: "half rounds up", taken: 1, missed: 1, want: 50},
		{name: "pending excluded from denominator", taken: 9, missed: 1, pending: 10, want: 90},
		{name: "only pending", pending: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdherenceRate(statusRecords(tt.taken, tt.missed, tt.pending))
			if got != tt.want {
				t.Errorf("AdherenceRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountTaken(t *testing.T) {
	records := statusRecords(7, 3, 2)
	if got := CountTaken(records); got != 7 {
		t.Errorf("CountTaken() = %d, want 7", got)
	}
	if got := CountTaken(nil); got != 0 {
		t.Errorf("CountTaken(nil) = %d, want 0", got)
	}
}
