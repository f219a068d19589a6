package domain

import "fmt"

// Goal feature dimensions, in vector order.
const (
	GoalWeightManagement  = "weight_management"
	GoalMuscleDevelopment = "muscle_development"
	GoalEnergyBoost       = "energy_boost"
	GoalHeartHealth       = "heart_health"
	GoalImmunityStrength  = "immunity_strength"
)

// GoalDims is the number of goal feature dimensions.
const GoalDims = 5

// GoalColumns lists the goal dimensions in the order used by every goal vector.
var GoalColumns = [GoalDims]string{
	GoalWeightManagement,
	GoalMuscleDevelopment,
	GoalEnergyBoost,
	GoalHeartHealth,
	GoalImmunityStrength,
}

// GoalDisplayNames maps goal dimensions to the labels shown to users.
var GoalDisplayNames = map[string]string{
	GoalWeightManagement:  "Weight Management",
	GoalMuscleDevelopment: "Muscle Development",
	GoalEnergyBoost:       "Energy Boost",
	GoalHeartHealth:       "Heart Health",
	GoalImmunityStrength:  "Immunity Strength",
}

// GoalIndex returns the vector position of a goal dimension.
func GoalIndex(goal string) (int, bool) {
	for i, g := range GoalColumns {
		if g == goal {
			return i, true
		}
	}
	return -1, false
}

type GoalVector [GoalDims]float64

type CatalogItem struct {
	Name      string     `json:"item"`
	Goals     GoalVector `json:"goals"`
	Nutrients []float64  `json:"nutrients"`
}

// Catalog is the immutable, ordered set of known food items.
type Catalog struct {
	items []CatalogItem
	index map[string]int
}

// NewCatalog builds a catalog preserving the given order. Item names must be
// unique and all nutrient vectors must share one dimensionality.
func NewCatalog(items []CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]CatalogItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	nutrientDims := -1
	for i, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("catalog row %d: empty item name", i)
		}
		if _, dup := c.index[item.Name]; dup {
			return nil, fmt.Errorf("catalog row %d: duplicate item %q", i, item.Name)
		}
		if nutrientDims == -1 {
			nutrientDims = len(item.Nutrients)
		} else if len(item.Nutrients) != nutrientDims {
			return nil, fmt.Errorf("catalog item %q: nutrient vector has %d dims, want %d",
				item.Name, len(item.Nutrients), nutrientDims)
		}
		c.index[item.Name] = i
		c.items[i] = item
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the catalog items in insertion order. Callers must not modify it.
func (c *Catalog) Items() []CatalogItem {
	return c.items
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, item := range c.items {
		names[i] = item.Name
	}
	return names
}

func (c *Catalog) Get(name string) (CatalogItem, bool) {
	i, ok := c.index[name]
	if !ok {
		return CatalogItem{}, false
	}
	return c.items[i], true
}
