package usecase

import (
	"regexp"
	"strings"

	"main/model"
)

// interactionTable lists known drug-drug (and drug-substance) interactions.
// Matching is symmetric; entries are keyed by normalized generic names and
// expanded through the alias table below.
var interactionTable = []model.DrugInteraction{
	{
		Drug1:          "aspirin",
		Drug2:          "warfarin",
		Severity:       model.SeverityMajor,
		Description:    "Taking aspirin and warfarin together significantly increases the risk of bleeding.",
		Recommendation: "Consult your doctor before using this combination. Regular blood monitoring may be required.",
	},
	{
		Drug1:          "aspirin",
		Drug2:          "ibuprofen",
		Severity:       model.SeverityModerate,
		Description:    "Both are NSAIDs, so the risk of stomach irritation and bleeding can increase.",
		Recommendation: "Avoid taking them at the same time. Leave at least 2 hours between doses.",
	},
	{
		Drug1:          "paracetamol",
		Drug2:          "alcohol",
		Severity:       model.SeverityMajor,
		Description:    "Combined with alcohol the risk of liver damage increases.",
		Recommendation: "Limit alcohol intake or avoid it entirely.",
	},
	{
		Drug1:          "metformin",
		Drug2:          "alcohol",
		Severity:       model.SeverityModerate,
		Description:    "Alcohol can increase the risk of lactic acidosis.",
		Recommendation: "Limit alcohol intake and inform your doctor.",
	},
	{
		Drug1:          "simvastatin",
		Drug2:          "grapefruit",
		Severity:       model.SeverityMajor,
		Description:    "Grapefruit raises simvastatin levels and with them the risk of muscle damage.",
		Recommendation: "Avoid grapefruit and grapefruit juice.",
	},
	{
		Drug1:          "digoxin",
		Drug2:          "furosemide",
		Severity:       model.SeverityModerate,
		Description:    "Furosemide causes potassium loss, raising the risk of digoxin toxicity.",
		Recommendation: "Electrolytes should be checked regularly; potassium supplements may be needed.",
	},
	{
		Drug1:          "ace inhibitor",
		Drug2:          "potassium",
		Severity:       model.SeverityModerate,
		Description:    "ACE inhibitors raise potassium levels; extra potassium can cause hyperkalemia.",
		Recommendation: "Consult your doctor before using potassium supplements.",
	},
	{
		Drug1:          "insulin",
		Drug2:          "alcohol",
		Severity:       model.SeverityMajor,
		Description:    "Alcohol increases the risk of hypoglycemia and makes blood sugar harder to control.",
		Recommendation: "Limit alcohol intake and check your blood sugar frequently.",
	},
}

// drugAliases maps the generic names used in the table to brand and
// alternate names users typically enter.
var drugAliases = map[string][]string{
	"aspirin":       {"aspirin", "acetylsalicylic acid", "asa"},
	"paracetamol":   {"paracetamol", "acetaminophen", "parol", "tylenol"},
	"ibuprofen":     {"ibuprofen", "brufen", "advil", "nurofen"},
	"metformin":     {"metformin", "glucophage"},
	"simvastatin":   {"simvastatin", "zocor"},
	"digoxin":       {"digoxin", "lanoxin"},
	"furosemide":    {"furosemide", "lasix"},
	"ace inhibitor": {"enalapril", "lisinopril", "ramipril", "captopril"},
	"insulin":       {"insulin", "humulin", "novolog"},
	"warfarin":      {"warfarin", "coumadin"},
}

var dosageSuffixPattern = regexp.MustCompile(`(?i)\d+\s*(mg|ml|gr|g|mcg|iu)`)
var whitespacePattern = regexp.MustCompile(`\s+`)

type InteractionService struct{}

func NewInteractionService() *InteractionService {
	return &InteractionService{}
}

// CheckInteractions checks every pair among the given medicine names and
// returns the detected interactions carrying the user's original names.
func (svc *InteractionService) CheckInteractions(medicineNames []string) []model.DrugInteraction {
	var found []model.DrugInteraction

	for i := 0; i < len(medicineNames); i++ {
		for j := i + 1; j < len(medicineNames); j++ {
			for _, entry := range interactionTable {
				if (drugMatches(entry.Drug1, medicineNames[i]) && drugMatches(entry.Drug2, medicineNames[j])) ||
					(drugMatches(entry.Drug1, medicineNames[j]) && drugMatches(entry.Drug2, medicineNames[i])) {
					interaction := entry
					interaction.Drug1 = medicineNames[i]
					interaction.Drug2 = medicineNames[j]
					found = append(found, interaction)
					break
				}
			}
		}
	}

	return found
}

// normalizeDrugName lowercases and strips dosage suffixes like "500mg".
func normalizeDrugName(name string) string {
	normalized := strings.ToLower(name)
	normalized = dosageSuffixPattern.ReplaceAllString(normalized, "")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

func drugMatches(tableDrug, medicineName string) bool {
	normalized := normalizeDrugName(medicineName)

	if strings.Contains(normalized, tableDrug) {
		return true
	}

	for _, alias := range drugAliases[tableDrug] {
		if strings.Contains(normalized, alias) {
			return true
		}
	}
	return false
}
