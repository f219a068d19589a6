package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

// Get nutrition facts for a single dish
func (r *Repository) GetNutritionFacts(ctx context.Context, item string) (*domain.NutritionFacts, error) {
	n := &domain.NutritionFacts{}
	g := &n.GoalScores

	err := r.pool.QueryRow(ctx,
		`SELECT item, flavor_profile, calories_kcal, protein_g, fat_g, carbohydrates_g,
		        fiber_g, sugars_g, saturated_fat_g, cholesterol_g, sodium_mg, iron_mg,
		        zinc_mg, calcium_mg, vitamin_b12_mcg, vitamin_a_mcg, vitamin_b_mcg,
		        vitamin_c_mcg, vitamin_d_mcg, vitamin_e_mcg,
		        weight_management, muscle_development, energy_boost, heart_health, immunity_strength
		 FROM food_items WHERE item = $1`,
		item,
	).Scan(&n.Item, &n.FlavorProfile, &n.CaloriesKcal, &n.ProteinG, &n.FatG, &n.CarbohydratesG,
		&n.FiberG, &n.SugarsG, &n.SaturatedFatG, &n.CholesterolG, &n.SodiumMg, &n.IronMg,
		&n.ZincMg, &n.CalciumMg, &n.VitaminB12Mcg, &n.VitaminAMcg, &n.VitaminBMcg,
		&n.VitaminCMcg, &n.VitaminDMcg, &n.VitaminEMcg,
		&g[0], &g[1], &g[2], &g[3], &g[4])

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, item)
		}
		return nil, fmt.Errorf("query nutrition facts for %q: %w", item, err)
	}

	return n, nil
}

// Count dishes in the nutrition table
func (r *Repository) CountFoodItems(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM food_items`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count food items: %w", err)
	}
	return total, nil
}
