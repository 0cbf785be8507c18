package usecase

import "testing"

func TestLookupMedicineByBarcode(t *testing.T) {
	info, ok := LookupMedicineByBarcode("8699546334455")
	if !ok {
		t.Fatal("expected a hit for a known barcode")
	}
	if info.Name != "Aspirin 100mg" || info.ActiveIngredient != "Acetylsalicylic Acid" {
		t.Errorf("unexpected entry: %+v", info)
	}

	if _, ok := LookupMedicineByBarcode("0000000000000"); ok {
		t.Error("expected a miss for an unknown barcode")
	}

	if _, ok := LookupMedicineByBarcode(""); ok {
		t.Error("expected a miss for an empty barcode")
	}
}
