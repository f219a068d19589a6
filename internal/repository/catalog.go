package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/model"
)

// Load the scaled catalog in insertion order
func (r *Repository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT item, weight_management, muscle_development, energy_boost,
		        heart_health, immunity_strength, nutrient_vector
		 FROM catalog_features
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query catalog features: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		g := &item.Goals
		if err := rows.Scan(&item.Name, &g[0], &g[1], &g[2], &g[3], &g[4], &item.Nutrients); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog features: %w", err)
	}

	return domain.NewCatalog(items)
}

// Load the goal standardization parameters fitted by the seed step
func (r *Repository) LoadGoalScaler(ctx context.Context) (model.Scaler, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT dimension, mean, scale FROM goal_scaler ORDER BY position`,
	)
	if err != nil {
		return model.Scaler{}, fmt.Errorf("query goal scaler: %w", err)
	}
	defer rows.Close()

	var s model.Scaler
	for i := 0; rows.Next(); i++ {
		var dim string
		var mean, scale float64
		if err := rows.Scan(&dim, &mean, &scale); err != nil {
			return model.Scaler{}, fmt.Errorf("scan goal scaler: %w", err)
		}
		if i >= domain.GoalDims || domain.GoalColumns[i] != dim {
			return model.Scaler{}, fmt.Errorf("goal scaler row %d is %q, out of dimension order", i, dim)
		}
		s.Mean = append(s.Mean, mean)
		s.Scale = append(s.Scale, scale)
	}
	if err := rows.Err(); err != nil {
		return model.Scaler{}, fmt.Errorf("iterate goal scaler: %w", err)
	}
	return s, nil
}
