package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog([]CatalogItem{
		{Name: "Rendang", Nutrients: []float64{1, 2}},
		{Name: "Soto Ayam", Nutrients: []float64{3, 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Rendang", "Soto Ayam"}, c.Names())
	item, ok := c.Get("Soto Ayam")
	assert.True(t, ok)
	assert.Equal(t, []float64{3, 4}, item.Nutrients)
	_, ok = c.Get("Pizza")
	assert.False(t, ok)
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		items []CatalogItem
	}{
		{name: "duplicate name", items: []CatalogItem{{Name: "Bakso Ayam"}, {Name: "Bakso Ayam"}}},
		{name: "empty name", items: []CatalogItem{{Name: ""}}},
		{name: "ragged nutrients", items: []CatalogItem{
			{Name: "a", Nutrients: []float64{1, 2}},
			{Name: "b", Nutrients: []float64{1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.items)
			assert.Error(t, err)
		})
	}
}

func TestGoalMatch_SortsAndKeepsMissingLast(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	n := NutritionFacts{GoalScores: [GoalDims]*float64{f(3), nil, f(8), f(5.5), nil}}

	got := n.GoalMatch()
	require.Len(t, got, GoalDims)

	order := make([]string, len(got))
	for i, g := range got {
		order[i] = g.Goal
	}
	assert.Equal(t, []string{
		GoalEnergyBoost, GoalHeartHealth, GoalWeightManagement,
		GoalMuscleDevelopment, GoalImmunityStrength,
	}, order)
	assert.Nil(t, got[3].Score)
	assert.Equal(t, "Energy Boost", got[0].DisplayName)
}

func TestLoadError(t *testing.T) {
	err := error(&LoadError{Source: "catalog", Err: ErrEmptyCatalog})

	assert.True(t, IsLoadFailure(err))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Equal(t, "load catalog: empty catalog", err.Error())
	assert.False(t, IsLoadFailure(ErrItemNotFound))
}

func TestGoalIndex(t *testing.T) {
	i, ok := GoalIndex(GoalHeartHealth)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = GoalIndex("flexibility")
	assert.False(t, ok)
}
