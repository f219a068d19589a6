package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalsKey(t *testing.T) {
	assert.Equal(t, "rec:goals:10,0,0,0,0:k:20", GoalsKey([]float64{10, 0, 0, 0, 0}, 20))
	assert.Equal(t, "rec:goals:2.5,0,1e-07,0,3:k:5", GoalsKey([]float64{2.5, 0, 1e-7, 0, 3}, 5))
	assert.NotEqual(t, GoalsKey([]float64{1, 0, 0, 0, 0}, 20), GoalsKey([]float64{1, 0, 0, 0, 0}, 10))
}

func TestItemKey(t *testing.T) {
	assert.Equal(t, "rec:item:Sate Ayam:k:20", ItemKey("Sate Ayam", 20))
}
