package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/nutriguide-service/internal/model"
)

// Load the precomputed nutrient similarity matrix. Each row's scores follow
// the same position order as the rows themselves.
func (r *Repository) LoadSimilarityMatrix(ctx context.Context) (*model.SimilarityMatrix, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT item, scores FROM nutrient_similarity ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query nutrient similarity: %w", err)
	}
	defer rows.Close()

	var items []string
	var scores [][]float64
	for rows.Next() {
		var item string
		var row []float64
		if err := rows.Scan(&item, &row); err != nil {
			return nil, fmt.Errorf("scan nutrient similarity row: %w", err)
		}
		items = append(items, item)
		scores = append(scores, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nutrient similarity: %w", err)
	}

	return model.NewSimilarityMatrix(items, scores)
}
