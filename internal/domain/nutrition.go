package domain

import "sort"

// NutritionFacts is one row of the nutrition dataset, values per 100g serving.
// Goal scores are raw dataset values and may be missing.
type NutritionFacts struct {
	Item           string  `json:"item"`
	FlavorProfile  string  `json:"flavor_profile"`
	CaloriesKcal   float64 `json:"calories_kcal"`
	ProteinG       float64 `json:"protein_g"`
	FatG           float64 `json:"fat_g"`
	CarbohydratesG float64 `json:"carbohydrates_g"`
	FiberG         float64 `json:"fiber_g"`
	SugarsG        float64 `json:"sugars_g"`
	SaturatedFatG  float64 `json:"saturated_fat_g"`
	CholesterolG   float64 `json:"cholesterol_g"`
	SodiumMg       float64 `json:"sodium_mg"`
	IronMg         float64 `json:"iron_mg"`
	ZincMg         float64 `json:"zinc_mg"`
	CalciumMg      float64 `json:"calcium_mg"`
	VitaminB12Mcg  float64 `json:"vitamin_b12_mcg"`
	VitaminAMcg    float64 `json:"vitamin_a_mcg"`
	VitaminBMcg    float64 `json:"vitamin_b_mcg"`
	VitaminCMcg    float64 `json:"vitamin_c_mcg"`
	VitaminDMcg    float64 `json:"vitamin_d_mcg"`
	VitaminEMcg    float64 `json:"vitamin_e_mcg"`

	GoalScores [GoalDims]*float64 `json:"-"`
}

// NutrientVector returns the nutrient values in the fixed order used for
// nutrient similarity.
func (n *NutritionFacts) NutrientVector() []float64 {
	return []float64{
		n.CaloriesKcal, n.ProteinG, n.FatG, n.CarbohydratesG, n.FiberG,
		n.SugarsG, n.SaturatedFatG, n.CholesterolG, n.SodiumMg, n.IronMg,
		n.ZincMg, n.CalciumMg, n.VitaminB12Mcg, n.VitaminAMcg, n.VitaminBMcg,
		n.VitaminCMcg, n.VitaminDMcg, n.VitaminEMcg,
	}
}

type GoalScore struct {
	Goal        string   `json:"goal"`
	DisplayName string   `json:"display_name"`
	Score       *float64 `json:"score"`
}

// GoalMatch lists the item's goal scores, highest first. Goals without data
// come last, in dimension order.
func (n *NutritionFacts) GoalMatch() []GoalScore {
	scores := make([]GoalScore, 0, GoalDims)
	for i, goal := range GoalColumns {
		scores = append(scores, GoalScore{
			Goal:        goal,
			DisplayName: GoalDisplayNames[goal],
			Score:       n.GoalScores[i],
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i].Score, scores[j].Score
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
	return scores
}

// Prediction is the outcome of classifying a dish photo.
type Prediction struct {
	Label         string  `json:"label"`
	ReadableLabel string  `json:"readable_label"`
	NutritionItem string  `json:"nutrition_item"`
	Confidence    float64 `json:"confidence"`
}

// ClassificationResult pairs a prediction with the dish's nutrition facts.
// Nutrition is nil when the dataset has no row for the predicted dish.
type ClassificationResult struct {
	Prediction Prediction      `json:"prediction"`
	Nutrition  *NutritionFacts `json:"nutrition,omitempty"`
	GoalMatch  []GoalScore     `json:"goal_match,omitempty"`
	Warning    string          `json:"warning,omitempty"`
}
