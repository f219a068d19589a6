package classifier

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClassLabels are the dishes the classifier was trained on, in output order.
var ClassLabels = []string{
	"ayam_bakar", "ayam_goreng", "ayam_semur", "bakso", "bubur", "cumi_goreng", "gado_gado",
	"gulai_ikan", "iga_bakar", "ikan_goreng", "martabak_telur", "mie_goreng", "nasi_goreng",
	"nasi_tumpeng", "nasi_uduk", "opor_ayam", "rawon", "rendang", "sate", "sop_buntut",
	"soto", "telur_dadar", "telur_rebus",
}

// nutritionAliases maps readable labels to the nutrition table's item names
// where the two differ.
var nutritionAliases = map[string]string{
	"Sate":        "Sate Ayam",
	"Bubur":       "Bubur Ayam",
	"Soto":        "Soto Ayam",
	"Ikan Goreng": "Ikan Bakar",
	"Bakso":       "Bakso Ayam",
}

var titleCaser = cases.Title(language.Und)

// ReadableLabel turns "nasi_goreng" into "Nasi Goreng".
func ReadableLabel(label string) string {
	return titleCaser.String(strings.ReplaceAll(label, "_", " "))
}

// NutritionItem returns the nutrition table key for a readable label.
func NutritionItem(readable string) string {
	if alias, ok := nutritionAliases[readable]; ok {
		return alias
	}
	return readable
}
