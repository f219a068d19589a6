package seeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/model"
)

// Features is the derived reference data written next to the raw dataset.
type Features struct {
	Catalog    []domain.CatalogItem
	GoalScaler model.Scaler
	Matrix     *model.SimilarityMatrix
}

// Beginner starts the transaction the seed runs in; *pgxpool.Pool satisfies it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Setup replaces the dataset and its derived tables in one transaction, so a
// failed seed leaves the database as it was.
func Setup(ctx context.Context, db Beginner, logger *zap.Logger) error {
	facts := Dataset()
	features, err := BuildFeatures(facts)
	if err != nil {
		return fmt.Errorf("build features: %w", err)
	}

	err = pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		return write(ctx, tx, facts, features, logger)
	})
	if err != nil {
		return err
	}

	logger.Info("seed: seeding complete")
	return nil
}

func write(ctx context.Context, db execer, facts []domain.NutritionFacts, features *Features, logger *zap.Logger) error {
	// Truncate existing data before insert
	logger.Info("seed: truncating existing data")
	if _, err := db.Exec(ctx, `
		TRUNCATE nutrient_similarity, goal_scaler, catalog_features, food_items CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info("seed: inserting food items", zap.Int("count", len(facts)))
	if err := seedFoodItems(ctx, db, facts); err != nil {
		return fmt.Errorf("seed food items: %w", err)
	}

	logger.Info("seed: inserting catalog features")
	if err := seedCatalog(ctx, db, features.Catalog); err != nil {
		return fmt.Errorf("seed catalog features: %w", err)
	}

	logger.Info("seed: inserting goal scaler")
	if err := seedGoalScaler(ctx, db, features.GoalScaler); err != nil {
		return fmt.Errorf("seed goal scaler: %w", err)
	}

	logger.Info("seed: inserting nutrient similarity matrix", zap.Int("items", features.Matrix.Len()))
	if err := seedSimilarity(ctx, db, features.Matrix); err != nil {
		return fmt.Errorf("seed nutrient similarity: %w", err)
	}
	return nil
}

// Dataset returns the bundled nutrition table as domain rows.
func Dataset() []domain.NutritionFacts {
	out := make([]domain.NutritionFacts, 0, len(dishes))
	for _, d := range dishes {
		n := d.nutrients
		f := domain.NutritionFacts{
			Item: d.name, FlavorProfile: d.flavor,
			CaloriesKcal: n[0], ProteinG: n[1], FatG: n[2], CarbohydratesG: n[3],
			FiberG: n[4], SugarsG: n[5], SaturatedFatG: n[6], CholesterolG: n[7],
			SodiumMg: n[8], IronMg: n[9], ZincMg: n[10], CalciumMg: n[11],
			VitaminB12Mcg: n[12], VitaminAMcg: n[13], VitaminBMcg: n[14],
			VitaminCMcg: n[15], VitaminDMcg: n[16], VitaminEMcg: n[17],
		}
		for i, g := range d.goals {
			if g == noScore {
				continue
			}
			score := g
			f.GoalScores[i] = &score
		}
		out = append(out, f)
	}
	return out
}

// BuildFeatures standardizes goal scores and nutrients and precomputes the
// nutrient similarity matrix. Missing goal scores take the column mean, which
// scales to 0.
func BuildFeatures(facts []domain.NutritionFacts) (*Features, error) {
	if len(facts) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	means := goalMeans(facts)
	goalRows := make([][]float64, len(facts))
	nutrientRows := make([][]float64, len(facts))
	names := make([]string, len(facts))
	for i, f := range facts {
		row := make([]float64, domain.GoalDims)
		for d, s := range f.GoalScores {
			if s == nil {
				row[d] = means[d]
			} else {
				row[d] = *s
			}
		}
		goalRows[i] = row
		nutrientRows[i] = f.NutrientVector()
		names[i] = f.Item
	}

	goalScaler, err := model.FitScaler(goalRows)
	if err != nil {
		return nil, fmt.Errorf("fit goal scaler: %w", err)
	}
	nutrientScaler, err := model.FitScaler(nutrientRows)
	if err != nil {
		return nil, fmt.Errorf("fit nutrient scaler: %w", err)
	}

	items := make([]domain.CatalogItem, len(facts))
	scaledNutrients := make([][]float64, len(facts))
	for i := range facts {
		goals, err := goalScaler.Transform(goalRows[i])
		if err != nil {
			return nil, err
		}
		nutrients, err := nutrientScaler.Transform(nutrientRows[i])
		if err != nil {
			return nil, err
		}
		items[i] = domain.CatalogItem{Name: names[i], Nutrients: nutrients}
		copy(items[i].Goals[:], goals)
		scaledNutrients[i] = nutrients
	}

	if _, err := domain.NewCatalog(items); err != nil {
		return nil, err
	}
	matrix, err := model.BuildSimilarityMatrix(names, scaledNutrients)
	if err != nil {
		return nil, err
	}

	return &Features{Catalog: items, GoalScaler: goalScaler, Matrix: matrix}, nil
}

func goalMeans(facts []domain.NutritionFacts) [domain.GoalDims]float64 {
	var sums, means [domain.GoalDims]float64
	var counts [domain.GoalDims]int
	for _, f := range facts {
		for d, s := range f.GoalScores {
			if s != nil {
				sums[d] += *s
				counts[d]++
			}
		}
	}
	for d := range means {
		if counts[d] > 0 {
			means[d] = sums[d] / float64(counts[d])
		}
	}
	return means
}

// placeholders renders "($1, $2, ...), ($n+1, ...)" for a multi-row insert.
func placeholders(rows, cols int) string {
	groups := make([]string, rows)
	for r := range rows {
		cells := make([]string, cols)
		for c := range cols {
			cells[c] = fmt.Sprintf("$%d", r*cols+c+1)
		}
		groups[r] = "(" + strings.Join(cells, ", ") + ")"
	}
	return strings.Join(groups, ", ")
}

func seedFoodItems(ctx context.Context, db execer, facts []domain.NutritionFacts) error {
	const cols = 25
	args := make([]any, 0, len(facts)*cols)
	for _, f := range facts {
		args = append(args, f.Item, f.FlavorProfile)
		for _, v := range f.NutrientVector() {
			args = append(args, v)
		}
		for _, s := range f.GoalScores {
			args = append(args, s)
		}
	}

	query := `INSERT INTO food_items (item, flavor_profile, calories_kcal, protein_g, fat_g,
		carbohydrates_g, fiber_g, sugars_g, saturated_fat_g, cholesterol_g, sodium_mg, iron_mg,
		zinc_mg, calcium_mg, vitamin_b12_mcg, vitamin_a_mcg, vitamin_b_mcg, vitamin_c_mcg,
		vitamin_d_mcg, vitamin_e_mcg, weight_management, muscle_development, energy_boost,
		heart_health, immunity_strength) VALUES ` + placeholders(len(facts), cols)

	_, err := db.Exec(ctx, query, args...)
	return err
}

func seedCatalog(ctx context.Context, db execer, items []domain.CatalogItem) error {
	const cols = 8
	args := make([]any, 0, len(items)*cols)
	for i, item := range items {
		g := item.Goals
		args = append(args, item.Name, i, g[0], g[1], g[2], g[3], g[4], item.Nutrients)
	}

	query := `INSERT INTO catalog_features (item, position, weight_management, muscle_development,
		energy_boost, heart_health, immunity_strength, nutrient_vector) VALUES ` + placeholders(len(items), cols)

	_, err := db.Exec(ctx, query, args...)
	return err
}

func seedGoalScaler(ctx context.Context, db execer, s model.Scaler) error {
	args := make([]any, 0, domain.GoalDims*4)
	for i, dim := range domain.GoalColumns {
		args = append(args, dim, i, s.Mean[i], s.Scale[i])
	}

	query := `INSERT INTO goal_scaler (dimension, position, mean, scale) VALUES ` + placeholders(domain.GoalDims, 4)
	_, err := db.Exec(ctx, query, args...)
	return err
}

func seedSimilarity(ctx context.Context, db execer, m *model.SimilarityMatrix) error {
	items := m.Items()
	args := make([]any, 0, len(items)*3)
	for i, a := range items {
		row := make([]float64, len(items))
		for j, b := range items {
			score, err := m.Score(a, b)
			if err != nil {
				return err
			}
			row[j] = score
		}
		args = append(args, a, i, row)
	}

	query := `INSERT INTO nutrient_similarity (item, position, scores) VALUES ` + placeholders(len(items), 3)
	_, err := db.Exec(ctx, query, args...)
	return err
}
