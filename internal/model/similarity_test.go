package model

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

func mustCatalog(t *testing.T, goals ...domain.GoalVector) *domain.Catalog {
	t.Helper()
	items := make([]domain.CatalogItem, len(goals))
	for i, g := range goals {
		items[i] = domain.CatalogItem{Name: fmt.Sprintf("item%d", i+1), Goals: g}
	}
	c, err := domain.NewCatalog(items)
	require.NoError(t, err)
	return c
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		u, v []float64
		want float64
	}{
		{name: "identical", u: []float64{3, 4, 0}, v: []float64{3, 4, 0}, want: 1},
		{name: "orthogonal", u: []float64{1, 0}, v: []float64{0, 1}, want: 0},
		{name: "opposite", u: []float64{1, 2}, v: []float64{-1, -2}, want: -1},
		{name: "zero vector", u: []float64{0, 0, 0}, v: []float64{1, 2, 3}, want: 0},
		{name: "both zero", u: []float64{0, 0}, v: []float64{0, 0}, want: 0},
		{name: "length mismatch", u: []float64{1, 2}, v: []float64{1, 2, 3}, want: 0},
		{name: "empty", u: nil, v: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.u, tt.v), 1e-12)
		})
	}
}

func TestCosine_SelfSimilarityIsOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := make([]float64, 1+rng.Intn(20))
		for d := range v {
			v[d] = rng.NormFloat64() * 100
		}
		v[0] += 1 // keep the norm nonzero
		s := Cosine(v, v)
		assert.InDelta(t, 1.0, s, 1e-9)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestCosine_LargeComponents(t *testing.T) {
	tests := []struct {
		name string
		u, v []float64
		want float64
	}{
		{name: "huge parallel", u: []float64{1e200, 0, 0}, v: []float64{2, 0, 0}, want: 1},
		{name: "huge diagonal", u: []float64{1e200, 0}, v: []float64{1, 1}, want: 1 / math.Sqrt2},
		{name: "max float parallel", u: []float64{1.7e308, 0}, v: []float64{1.7e308, 0}, want: 1},
		{name: "max float both dims", u: []float64{1.7e308, 1.7e308}, v: []float64{1, 0}, want: 1 / math.Sqrt2},
		{name: "tiny components", u: []float64{1e-300, 1e-300}, v: []float64{1, 1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.u, tt.v)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestRankByGoals_LargeQuery(t *testing.T) {
	c := mustCatalog(t,
		domain.GoalVector{2, 0, 0, 0, 0},
		domain.GoalVector{0, 2, 0, 0, 0},
		domain.GoalVector{1, 1, 0, 0, 0},
	)

	for _, q := range []float64{1e200, 1.7e308} {
		t.Run(fmt.Sprintf("%g", q), func(t *testing.T) {
			recs, err := RankByGoals([]float64{q, 0, 0, 0, 0}, c, 0)
			require.NoError(t, err)
			require.Len(t, recs, 3)

			assert.Equal(t, "item1", recs[0].Item)
			assert.InDelta(t, 1, recs[0].Score, 1e-12)
			assert.Equal(t, "item3", recs[1].Item)
			assert.InDelta(t, 1/math.Sqrt2, recs[1].Score, 1e-12)
			assert.Equal(t, "item2", recs[2].Item)
			assert.InDelta(t, 0, recs[2].Score, 1e-12)
		})
	}
}

func TestCosineMatrix_Symmetric(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {0, 0, 0}, {-1, 4, 2}, {5, 5, 5}}
	m := CosineMatrix(rows)

	require.Len(t, m, len(rows))
	for i := range m {
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i], "m[%d][%d]", i, j)
		}
	}
	assert.InDelta(t, 1.0, m[0][0], 1e-12)
	assert.Equal(t, 0.0, m[1][1])
}

func TestRankByGoals_Scenario(t *testing.T) {
	catalog := mustCatalog(t,
		domain.GoalVector{10, 0, 0, 0, 0},
		domain.GoalVector{0, 10, 0, 0, 0},
		domain.GoalVector{5, 5, 0, 0, 0},
	)

	recs, err := RankByGoals([]float64{10, 0, 0, 0, 0}, catalog, 15)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "item1", recs[0].Item)
	assert.InDelta(t, 1.0, recs[0].Score, 1e-12)
	assert.Equal(t, "item3", recs[1].Item)
	assert.InDelta(t, 0.70710678, recs[1].Score, 1e-8)
	assert.Equal(t, "item2", recs[2].Item)
	assert.InDelta(t, 0.0, recs[2].Score, 1e-12)
}

func TestRankByGoals_TiesKeepCatalogOrder(t *testing.T) {
	catalog := mustCatalog(t,
		domain.GoalVector{0, 1, 0, 0, 0},
		domain.GoalVector{1, 0, 0, 0, 0},
		domain.GoalVector{0, 0, 1, 0, 0},
		domain.GoalVector{2, 0, 0, 0, 0},
	)

	recs, err := RankByGoals([]float64{1, 0, 0, 0, 0}, catalog, 0)
	require.NoError(t, err)

	got := make([]string, len(recs))
	for i, r := range recs {
		got[i] = r.Item
	}
	assert.Equal(t, []string{"item2", "item4", "item1", "item3"}, got)
}

func TestRankByGoals_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	goals := make([]domain.GoalVector, 60)
	for i := range goals {
		for d := range goals[i] {
			goals[i][d] = rng.NormFloat64()
		}
	}
	catalog := mustCatalog(t, goals...)

	for trial := 0; trial < 50; trial++ {
		query := make([]float64, domain.GoalDims)
		for d := range query {
			query[d] = rng.Float64() * 10
		}
		k := rng.Intn(30) + 1

		recs, err := RankByGoals(query, catalog, k)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(recs), k)

		seen := make(map[string]bool)
		for i, r := range recs {
			assert.GreaterOrEqual(t, r.Score, -1.0)
			assert.LessOrEqual(t, r.Score, 1.0)
			assert.False(t, seen[r.Item], "duplicate item %s", r.Item)
			seen[r.Item] = true
			if i > 0 {
				assert.GreaterOrEqual(t, recs[i-1].Score, r.Score)
			}
		}
	}
}

func TestRankByGoals_EdgeCases(t *testing.T) {
	t.Run("empty catalog returns empty result", func(t *testing.T) {
		empty, err := domain.NewCatalog(nil)
		require.NoError(t, err)

		recs, err := RankByGoals([]float64{10, 0, 0, 0, 0}, empty, 5)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("zero query scores everything zero", func(t *testing.T) {
		catalog := mustCatalog(t, domain.GoalVector{1, 2, 3, 4, 5}, domain.GoalVector{5, 4, 3, 2, 1})

		recs, err := RankByGoals(make([]float64, 5), catalog, 5)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		for _, r := range recs {
			assert.Equal(t, 0.0, r.Score)
		}
		assert.Equal(t, "item1", recs[0].Item)
	})

	t.Run("wrong dimensionality", func(t *testing.T) {
		catalog := mustCatalog(t, domain.GoalVector{1, 0, 0, 0, 0})

		_, err := RankByGoals([]float64{1, 0}, catalog, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSimilarityMatrix(t *testing.T) {
	items := []string{"Rendang", "Sate Ayam", "Gado Gado"}
	scores := [][]float64{
		{1, 0.8, -0.2},
		{0.8, 1, 0.1},
		{-0.2, 0.1, 1},
	}

	m, err := NewSimilarityMatrix(items, scores)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	t.Run("typed lookup", func(t *testing.T) {
		s, err := m.Score("Rendang", "Sate Ayam")
		require.NoError(t, err)
		assert.Equal(t, 0.8, s)

		_, err = m.Score("Rendang", "Pizza")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("symmetry", func(t *testing.T) {
		for _, a := range m.Items() {
			for _, b := range m.Items() {
				ab, err := m.Score(a, b)
				require.NoError(t, err)
				ba, err := m.Score(b, a)
				require.NoError(t, err)
				assert.InDelta(t, ab, ba, 1e-12)
			}
		}
	})

	t.Run("rank excludes the queried item", func(t *testing.T) {
		recs, err := m.RankByItem("Rendang", 10)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Sate Ayam", recs[0].Item)
		assert.Equal(t, "Gado Gado", recs[1].Item)
		for _, r := range recs {
			assert.NotEqual(t, "Rendang", r.Item)
		}
	})

	t.Run("rank truncates to k", func(t *testing.T) {
		recs, err := m.RankByItem("Gado Gado", 1)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Sate Ayam", recs[0].Item)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := m.RankByItem("X", 10)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestNewSimilarityMatrix_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		items  []string
		scores [][]float64
	}{
		{name: "row count mismatch", items: []string{"a", "b"}, scores: [][]float64{{1, 0}}},
		{name: "not square", items: []string{"a", "b"}, scores: [][]float64{{1, 0}, {0}}},
		{name: "asymmetric", items: []string{"a", "b"}, scores: [][]float64{{1, 0.5}, {0.4, 1}}},
		{name: "out of range", items: []string{"a", "b"}, scores: [][]float64{{1, 1.5}, {1.5, 1}}},
		{name: "duplicate item", items: []string{"a", "a"}, scores: [][]float64{{1, 1}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimilarityMatrix(tt.items, tt.scores)
			assert.Error(t, err)
		})
	}
}

func TestBuildSimilarityMatrix(t *testing.T) {
	m, err := BuildSimilarityMatrix(
		[]string{"a", "b", "c"},
		[][]float64{{1, 0}, {0, 1}, {1, 1}},
	)
	require.NoError(t, err)

	recs, err := m.RankByItem("a", 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "c", recs[0].Item)
	assert.InDelta(t, 0.70710678, recs[0].Score, 1e-8)
	assert.Equal(t, "b", recs[1].Item)
}
