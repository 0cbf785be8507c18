package usecase

import (
	"reflect"
	"testing"

	"main/model"
)

func TestEvaluateAchievementsStreakUnlock(t *testing.T) {
	stats := model.UserStats{
		UserID:              "user-1",
		TotalMedicinesTaken: 3,
		CurrentStreak:       3,
		AdherenceRate:       100,
		Achievements:        []string{"first-dose"},
		TotalPoints:         10,
	}

	updated, unlocked := EvaluateAchievements(stats)

	ids := make([]string, len(unlocked))
	for i, a := range unlocked {
		ids[i] = a.ID
	}
	// 100% adherence also crosses the consistency threshold
	want := []string{"streak-3", "consistency-90"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("unlocked = %v, want %v", ids, want)
	}

	if updated.TotalPoints != 10+25+100 {
		t.Errorf("TotalPoints = %d, want %d", updated.TotalPoints, 135)
	}

	if !reflect.DeepEqual(updated.Achievements, []string{"first-dose", "streak-3", "consistency-90"}) {
		t.Errorf("Achievements = %v", updated.Achievements)
	}
}

func TestEvaluateAchievementsTotalWithoutStreak(t *testing.T) {
	stats := model.UserStats{
		UserID:              "user-1",
		TotalMedicinesTaken: 50,
		CurrentStreak:       0,
		AdherenceRate:       60,
		Achievements:        []string{"first-dose"},
		TotalPoints:         10,
	}

	updated, unlocked := EvaluateAchievements(stats)

	if len(unlocked) != 1 || unlocked[0].ID != "total-50" {
		t.Fatalf("unlocked = %v, want only total-50", unlocked)
	}
	if updated.TotalPoints != 85 {
		t.Errorf("TotalPoints = %d, want 85", updated.TotalPoints)
	}
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	stats := model.UserStats{
		UserID:              "user-1",
		TotalMedicinesTaken: 5,
		CurrentStreak:       3,
		AdherenceRate:       80,
		Achievements:        []string{},
	}

	first, unlockedFirst := EvaluateAchievements(stats)
	if len(unlockedFirst) == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}

	second, unlockedSecond := EvaluateAchievements(first)
	if len(unlockedSecond) != 0 {
		t.Errorf("second evaluation unlocked %v, want none", unlockedSecond)
	}
	if !reflect.DeepEqual(first.Achievements, second.Achievements) {
		t.Errorf("achievements changed between runs: %v vs %v", first.Achievements, second.Achievements)
	}
	if first.TotalPoints != second.TotalPoints {
		t.Errorf("points changed between runs: %d vs %d", first.TotalPoints, second.TotalPoints)
	}
}

func TestEvaluateAchievementsDoesNotMutateInput(t *testing.T) {
	stats := model.UserStats{
		UserID:              "user-1",
		TotalMedicinesTaken: 1,
		Achievements:        []string{},
	}

	EvaluateAchievements(stats)

	if len(stats.Achievements) != 0 || stats.TotalPoints != 0 {
		t.Errorf("input stats mutated: %+v", stats)
	}
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{135, 2},
		{250, 3},
		{610, 7},
	}

	for _, tt := range tests {
		if got := LevelForPoints(tt.points); got != tt.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestAchievementCatalogIsACopy(t *testing.T) {
	catalog := AchievementCatalog()
	if len(catalog) != 7 {
		t.Fatalf("catalog size = %d, want 7", len(catalog))
	}

	catalog[0].Points = 9999
	if achievementCatalog[0].Points == 9999 {
		t.Error("mutating the returned catalog leaked into the package table")
	}
}
