package usecase

import (
	"main/model"
)

// medicineDatabase is a small bundled reference set keyed by product
// barcode. A real deployment would sit in front of a national drug
// registry; the bundled table covers the common products used in demos
// and tests.
var medicineDatabase = map[string]model.MedicineInfo{
	"8699546334455": {
		Name:             "Aspirin 100mg",
		Barcode:          "8699546334455",
		Manufacturer:     "Bayer",
		ActiveIngredient: "Acetylsalicylic Acid",
	},
	"8699546334456": {
		Name:             "Parol 500mg",
		Barcode:          "8699546334456",
		Manufacturer:     "Atabay",
		ActiveIngredient: "Paracetamol",
	},
	"8699546334457": {
		Name:             "Voltaren Gel",
		Barcode:          "8699546334457",
		Manufacturer:     "Novartis",
		ActiveIngredient: "Diclofenac",
	},
	"8699546334458": {
		Name:             "Nurofen 400mg",
		Barcode:          "8699546334458",
		Manufacturer:     "Reckitt Benckiser",
		ActiveIngredient: "Ibuprofen",
	},
	"8699546334459": {
		Name:             "Augmentin 1000mg",
		Barcode:          "8699546334459",
		Manufacturer:     "GlaxoSmithKline",
		ActiveIngredient: "Amoxicillin + Clavulanic Acid",
	},
	"8699546334460": {
		Name:             "Cipro 500mg",
		Barcode:          "8699546334460",
		Manufacturer:     "Bayer",
		ActiveIngredient: "Ciprofloxacin",
	},
}

// LookupMedicineByBarcode resolves a scanned barcode to reference info.
// The second return is false when the barcode is unknown.
func LookupMedicineByBarcode(barcode string) (model.MedicineInfo, bool) {
	info, ok := medicineDatabase[barcode]
	return info, ok
}
