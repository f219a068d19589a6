package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/cache"
	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/metrics"
	"github.com/actuallystonmai/nutriguide-service/internal/model"
	"github.com/actuallystonmai/nutriguide-service/internal/session"
)

const (
	defaultLimit            = 20
	defaultBatchConcurrency = 10

	warningEmptyCatalog = "empty_catalog"
)

type NutritionStore interface {
	GetNutritionFacts(ctx context.Context, item string) (*domain.NutritionFacts, error)
}

type ResultCache interface {
	Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, key string, recs []domain.Recommendation) error
}

type Classifier interface {
	Predict(ctx context.Context, image []byte, contentType string) (domain.Prediction, error)
}

type Deps struct {
	Nutrition  NutritionStore
	Cache      ResultCache // optional
	Classifier Classifier
	Sessions   *session.Store
	Metrics    *metrics.Collector // optional
	Logger     *zap.Logger
}

type Options struct {
	// Limit is the number of recommendations ranked per request (top k).
	Limit            int
	BatchConcurrency int
}

type Service struct {
	data       *ReferenceData
	nutrition  NutritionStore
	cache      ResultCache
	classifier Classifier
	sessions   *session.Store
	metrics    *metrics.Collector
	logger     *zap.Logger
	limit      int
	batchConc  int
}

func NewService(data *ReferenceData, deps Deps, opts Options) *Service {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = defaultBatchConcurrency
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		data:       data,
		nutrition:  deps.Nutrition,
		cache:      deps.Cache,
		classifier: deps.Classifier,
		sessions:   deps.Sessions,
		metrics:    deps.Metrics,
		logger:     logger,
		limit:      opts.Limit,
		batchConc:  opts.BatchConcurrency,
	}
}

// Items lists the catalog in its original order.
func (s *Service) Items() []string {
	return s.data.Catalog.Names()
}

// SimilarCandidates lists the items that can be used for nutrient similarity.
func (s *Service) SimilarCandidates() []string {
	return append([]string(nil), s.data.Matrix.Items()...)
}

func (s *Service) CreateSession() session.Page {
	return s.sessions.Create().Current()
}

func (s *Service) DeleteSession(id string) error {
	if !s.sessions.Delete(id) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return nil
}

func (s *Service) CurrentPage(id string) (session.Page, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return session.Page{}, err
	}
	return sess.Current(), nil
}

func (s *Service) NextPage(id string) (session.Page, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return session.Page{}, err
	}
	return sess.Next(), nil
}

// RecommendByGoals ranks the catalog against a goal query and resets the
// session's paginator to the new result. A non-empty goal name takes
// precedence over the raw vector.
func (s *Service) RecommendByGoals(ctx context.Context, sessionID, goal string, vector []float64) (session.Page, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return session.Page{}, err
	}

	raw := vector
	if goal != "" {
		if raw, err = model.OneHotGoal(goal); err != nil {
			return session.Page{}, err
		}
	}

	result, err := s.GoalRecommendations(ctx, raw)
	if err != nil {
		return session.Page{}, err
	}

	page := sess.SetResult(domain.ModeGoals, result.Recommendations)
	page.Metadata = newMeta(domain.ModeGoals, result)
	if s.data.Catalog.Len() == 0 {
		page.Warning = warningEmptyCatalog
	}
	return page, nil
}

// RecommendSimilar ranks items by precomputed nutrient similarity to item and
// resets the session's paginator to the new result.
func (s *Service) RecommendSimilar(ctx context.Context, sessionID, item string) (session.Page, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return session.Page{}, err
	}

	result, err := s.SimilarItems(ctx, item)
	if err != nil {
		return session.Page{}, err
	}
	page := sess.SetResult(domain.ModeSimilar, result.Recommendations)
	page.Metadata = newMeta(domain.ModeSimilar, result)
	return page, nil
}

func newMeta(mode string, result *domain.RecommendationResult) *domain.RecommendationMeta {
	return &domain.RecommendationMeta{
		Mode:        mode,
		CacheHit:    result.CacheHit,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		TotalCount:  len(result.Recommendations),
	}
}

// GoalRecommendations encodes a raw goal vector and ranks the catalog by it.
func (s *Service) GoalRecommendations(ctx context.Context, raw []float64) (*domain.RecommendationResult, error) {
	start := time.Now()

	query, err := s.data.Encoder.Encode(raw)
	if err != nil {
		s.metrics.ObserveRecommendation(domain.ModeGoals, "invalid", time.Since(start))
		return nil, err
	}

	key := cache.GoalsKey(raw, s.limit)
	if recs, ok := s.cacheGet(ctx, key); ok {
		s.metrics.ObserveRecommendation(domain.ModeGoals, "success", time.Since(start))
		return &domain.RecommendationResult{Recommendations: recs, CacheHit: true}, nil
	}

	recs, err := model.RankByGoals(query, s.data.Catalog, s.limit)
	if err != nil {
		s.metrics.ObserveRecommendation(domain.ModeGoals, "error", time.Since(start))
		return nil, err
	}
	s.cacheSet(ctx, key, recs)

	s.metrics.ObserveRecommendation(domain.ModeGoals, "success", time.Since(start))
	return &domain.RecommendationResult{Recommendations: recs}, nil
}

// SimilarItems ranks items by their precomputed nutrient similarity to item.
func (s *Service) SimilarItems(ctx context.Context, item string) (*domain.RecommendationResult, error) {
	start := time.Now()

	if !s.data.Matrix.Has(item) {
		s.metrics.ObserveRecommendation(domain.ModeSimilar, "not_found", time.Since(start))
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, item)
	}

	key := cache.ItemKey(item, s.limit)
	if recs, ok := s.cacheGet(ctx, key); ok {
		s.metrics.ObserveRecommendation(domain.ModeSimilar, "success", time.Since(start))
		return &domain.RecommendationResult{Recommendations: recs, CacheHit: true}, nil
	}

	recs, err := s.data.Matrix.RankByItem(item, s.limit)
	if err != nil {
		s.metrics.ObserveRecommendation(domain.ModeSimilar, "error", time.Since(start))
		return nil, err
	}
	s.cacheSet(ctx, key, recs)

	s.metrics.ObserveRecommendation(domain.ModeSimilar, "success", time.Since(start))
	return &domain.RecommendationResult{Recommendations: recs}, nil
}

func (s *Service) Nutrition(ctx context.Context, item string) (*domain.NutritionFacts, error) {
	facts, err := s.nutrition.GetNutritionFacts(ctx, item)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			s.metrics.NutritionLookup(false)
		}
		return nil, err
	}
	s.metrics.NutritionLookup(true)
	return facts, nil
}

// Classify identifies the dish in an image and attaches its nutrition facts.
// A missing nutrition row is reported as a warning, not an error.
func (s *Service) Classify(ctx context.Context, image []byte, contentType string) (*domain.ClassificationResult, error) {
	pred, err := s.classifier.Predict(ctx, image, contentType)
	if err != nil {
		s.logger.Error("classification failed", zap.Error(err))
		s.metrics.Classification("error")
		return nil, err
	}
	s.metrics.Classification("success")

	result := &domain.ClassificationResult{Prediction: pred}
	facts, err := s.Nutrition(ctx, pred.NutritionItem)
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		result.Warning = fmt.Sprintf("Nutrition data for %s not found.", pred.ReadableLabel)
	case err != nil:
		return nil, fmt.Errorf("lookup nutrition for %q: %w", pred.NutritionItem, err)
	default:
		result.Nutrition = facts
		result.GoalMatch = facts.GoalMatch()
	}
	return result, nil
}

// GetBatchSimilar computes similar items for one page of the matrix items
// with a bounded worker pool.
func (s *Service) GetBatchSimilar(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	all := s.data.Matrix.Items()
	from := min((page-1)*limit, len(all))
	to := min(from+limit, len(all))
	items := all[from:to]

	results := make([]domain.BatchItemResult, len(items))
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.batchConc) // semaphore

	for i, item := range items {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processItemForBatch(ctx, name)
		}(i, item)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalItems: len(all),
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *Service) processItemForBatch(ctx context.Context, item string) domain.BatchItemResult {
	result, err := s.SimilarItems(ctx, item)
	if err != nil {
		s.logger.Warn("batch: similar items failed", zap.String("item", item), zap.Error(err))
		code, msg := categorizeError(err)
		return domain.BatchItemResult{
			Item:    item,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchItemResult{
		Item:            item,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

func (s *Service) cacheGet(ctx context.Context, key string) ([]domain.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}
	recs, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	s.metrics.CacheLookup(found)
	return recs, found
}

func (s *Service) cacheSet(ctx context.Context, key string, recs []domain.Recommendation) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, recs); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Handle response error
func categorizeError(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return "item_not_found", "item not found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input", "invalid input"
	default:
		return "internal_error", "an unexpected error occurred"
	}
}
