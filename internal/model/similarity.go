package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

const symmetryTolerance = 1e-9

// Cosine returns the cosine similarity of u and v. It is 0 when either vector
// has zero norm or the lengths differ. Each vector is divided by its largest
// magnitude first so large components cannot overflow the norms.
func Cosine(u, v []float64) float64 {
	if len(u) != len(v) || len(u) == 0 {
		return 0
	}

	su, sv := maxAbs(u), maxAbs(v)
	if su == 0 || sv == 0 {
		return 0
	}

	var dot, normU, normV float64
	for i := range u {
		a, b := u[i]/su, v[i]/sv
		dot += a * b
		normU += a * a
		normV += b * b
	}

	denom := math.Sqrt(normU) * math.Sqrt(normV)
	if denom == 0 {
		return 0
	}
	s := dot / denom
	if math.IsNaN(s) {
		return 0
	}
	return clamp(s)
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m || math.IsNaN(a) {
			m = a
		}
	}
	return m
}

// CosineMatrix computes the full pairwise cosine similarity matrix of rows.
func CosineMatrix(rows [][]float64) [][]float64 {
	n := len(rows)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := Cosine(rows[i], rows[j])
			m[i][j] = s
			m[j][i] = s
		}
	}
	return m
}

// RankByGoals ranks catalog items against a scaled goal query. The query is
// appended as an extra row, the full pairwise matrix is computed, and the
// query's row (minus its self entry) is sorted descending. Equal scores keep
// catalog order. k <= 0 returns every item.
//
// Recomputing the whole matrix is quadratic in catalog size; it is only meant
// for catalogs of at most a few hundred items.
func RankByGoals(query []float64, catalog *domain.Catalog, k int) ([]domain.Recommendation, error) {
	if len(query) != domain.GoalDims {
		return nil, fmt.Errorf("%w: query has %d dims, want %d", domain.ErrInvalidInput, len(query), domain.GoalDims)
	}
	if catalog == nil || catalog.Len() == 0 {
		return []domain.Recommendation{}, nil
	}

	items := catalog.Items()
	n := len(items)
	rows := make([][]float64, 0, n+1)
	names := make([]string, 0, n+1)
	for _, item := range items {
		goals := item.Goals
		rows = append(rows, goals[:])
		names = append(names, item.Name)
	}
	rows = append(rows, query)
	names = append(names, "")

	m := CosineMatrix(rows)
	return rankRow(names, m[n], n, k), nil
}

// rankRow turns one similarity row into a ranked result, skipping the entry at
// exclude. The stable sort keeps insertion order among equal scores.
func rankRow(names []string, scores []float64, exclude, k int) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(names))
	for i, name := range names {
		if i == exclude {
			continue
		}
		recs = append(recs, domain.Recommendation{Item: name, Score: scores[i]})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if k > 0 && len(recs) > k {
		recs = recs[:k]
	}
	return recs
}

// SimilarityMatrix is a precomputed, symmetric item-by-item similarity table.
type SimilarityMatrix struct {
	items  []string
	index  map[string]int
	scores [][]float64
}

// NewSimilarityMatrix validates and wraps a square score table whose rows and
// columns both follow items order.
func NewSimilarityMatrix(items []string, scores [][]float64) (*SimilarityMatrix, error) {
	if len(scores) != len(items) {
		return nil, fmt.Errorf("similarity matrix has %d rows for %d items", len(scores), len(items))
	}

	index := make(map[string]int, len(items))
	for i, item := range items {
		if _, dup := index[item]; dup {
			return nil, fmt.Errorf("similarity matrix: duplicate item %q", item)
		}
		index[item] = i
		if len(scores[i]) != len(items) {
			return nil, fmt.Errorf("similarity matrix row %q has %d columns, want %d", item, len(scores[i]), len(items))
		}
	}

	for i := range scores {
		for j := i; j < len(scores); j++ {
			a, b := scores[i][j], scores[j][i]
			if !inRange(a) || !inRange(b) {
				return nil, fmt.Errorf("similarity(%q, %q) = %v/%v is outside [-1, 1]", items[i], items[j], a, b)
			}
			if math.Abs(a-b) > symmetryTolerance {
				return nil, fmt.Errorf("similarity matrix is not symmetric at (%q, %q): %v != %v", items[i], items[j], a, b)
			}
		}
	}

	return &SimilarityMatrix{
		items:  append([]string(nil), items...),
		index:  index,
		scores: scores,
	}, nil
}

// BuildSimilarityMatrix computes the cosine matrix of the given vectors.
func BuildSimilarityMatrix(items []string, vectors [][]float64) (*SimilarityMatrix, error) {
	if len(items) != len(vectors) {
		return nil, fmt.Errorf("build similarity matrix: %d items, %d vectors", len(items), len(vectors))
	}
	return NewSimilarityMatrix(items, CosineMatrix(vectors))
}

func (m *SimilarityMatrix) Len() int {
	return len(m.items)
}

// Items returns the matrix axis in order. Callers must not modify it.
func (m *SimilarityMatrix) Items() []string {
	return m.items
}

func (m *SimilarityMatrix) Has(item string) bool {
	_, ok := m.index[item]
	return ok
}

// Score returns sim(a, b), or ErrItemNotFound when either item is missing.
func (m *SimilarityMatrix) Score(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrItemNotFound, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrItemNotFound, b)
	}
	return m.scores[i][j], nil
}

// RankByItem ranks every other item by its precomputed similarity to item.
func (m *SimilarityMatrix) RankByItem(item string, k int) ([]domain.Recommendation, error) {
	i, ok := m.index[item]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, item)
	}
	return rankRow(m.items, m.scores[i], i, k), nil
}

func inRange(x float64) bool {
	return !math.IsNaN(x) && x >= -1-symmetryTolerance && x <= 1+symmetryTolerance
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
