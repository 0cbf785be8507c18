package usecase

import (
	"testing"

	"main/model"
)

func TestCheckInteractions(t *testing.T) {
	svc := NewInteractionService()

	tests := []struct {
		name         string
		medicines    []string
		wantCount    int
		wantSeverity model.InteractionSeverity
	}{
		{
			name:         "aspirin and warfarin",
			medicines:    []string{"Aspirin", "Warfarin"},
			wantCount:    1,
			wantSeverity: model.SeverityMajor,
		},
		{
			name:         "brand names resolve through aliases",
			medicines:    []string{"Coumadin", "ASA"},
			wantCount:    1,
			wantSeverity: model.SeverityMajor,
		},
		{
			name:         "dosage suffix is stripped before matching",
			medicines:    []string{"Aspirin 100mg", "Ibuprofen 400 mg"},
			wantCount:    1,
			wantSeverity: model.SeverityModerate,
		},
		{
			name:      "no interaction",
			medicines: []string{"Aspirin", "Metformin"},
			wantCount: 0,
		},
		{
			name:      "single medicine has no pairs",
			medicines: []string{"Aspirin"},
			wantCount: 0,
		},
		{
			name:      "three medicines check every pair",
			medicines: []string{"Aspirin", "Warfarin", "Nurofen"},
			wantCount: 2, // aspirin+warfarin, aspirin+ibuprofen
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := svc.CheckInteractions(tt.medicines)
			if len(found) != tt.wantCount {
				t.Fatalf("CheckInteractions(%v) found %d interactions, want %d: %+v",
					tt.medicines, len(found), tt.wantCount, found)
			}
			if tt.wantCount == 1 && found[0].Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", found[0].Severity, tt.wantSeverity)
			}
		})
	}
}

func TestCheckInteractionsKeepsOriginalNames(t *testing.T) {
	svc := NewInteractionService()

	found := svc.CheckInteractions([]string{"Aspirin 100mg", "Coumadin 5mg"})
	if len(found) != 1 {
		t.Fatalf("found %d interactions, want 1", len(found))
	}
	if found[0].Drug1 != "Aspirin 100mg" || found[0].Drug2 != "Coumadin 5mg" {
		t.Errorf("interaction names = (%q, %q), want the user's original names",
			found[0].Drug1, found[0].Drug2)
	}
}

func TestNormalizeDrugName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Aspirin 100mg", "aspirin"},
		{"PAROL 500 mg", "parol"},
		{"insulin", "insulin"},
		{"  Metformin  850MG ", "metformin"},
	}

	for _, tt := range tests {
		if got := normalizeDrugName(tt.in); got != tt.want {
			t.Errorf("normalizeDrugName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
