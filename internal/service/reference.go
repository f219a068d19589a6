package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/model"
)

// ReferenceSource provides the read-only tables loaded at startup.
type ReferenceSource interface {
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
	LoadGoalScaler(ctx context.Context) (model.Scaler, error)
	LoadSimilarityMatrix(ctx context.Context) (*model.SimilarityMatrix, error)
}

// ReferenceData is everything the recommendation engine reads. It is built
// once and never mutated, so it is shared freely between sessions.
type ReferenceData struct {
	Catalog *domain.Catalog
	Encoder *model.GoalEncoder
	Matrix  *model.SimilarityMatrix
}

// LoadReferenceData loads the catalog, goal scaler and nutrient matrix. Any
// failure is a *domain.LoadError and must stop the process from serving.
func LoadReferenceData(ctx context.Context, src ReferenceSource, logger *zap.Logger) (*ReferenceData, error) {
	catalog, err := src.LoadCatalog(ctx)
	if err != nil {
		return nil, &domain.LoadError{Source: "catalog", Err: err}
	}

	scaler, err := src.LoadGoalScaler(ctx)
	if err != nil {
		return nil, &domain.LoadError{Source: "goal scaler", Err: err}
	}
	encoder, err := model.NewGoalEncoder(scaler)
	if err != nil {
		return nil, &domain.LoadError{Source: "goal scaler", Err: err}
	}

	matrix, err := src.LoadSimilarityMatrix(ctx)
	if err != nil {
		return nil, &domain.LoadError{Source: "nutrient similarity matrix", Err: err}
	}

	if catalog.Len() == 0 {
		logger.Warn("catalog is empty, goal recommendations will be blank")
	}
	for _, item := range matrix.Items() {
		if _, ok := catalog.Get(item); !ok {
			logger.Warn("similarity matrix item missing from catalog", zap.String("item", item))
		}
	}

	logger.Info("reference data loaded",
		zap.Int("catalog_items", catalog.Len()),
		zap.Int("matrix_items", matrix.Len()))

	return &ReferenceData{Catalog: catalog, Encoder: encoder, Matrix: matrix}, nil
}
