package model

import (
	"fmt"
	"math"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

// goalIntensity is the value a selected goal takes in a one-hot query.
const goalIntensity = 10

// Scaler holds per-dimension standardization parameters fitted offline.
type Scaler struct {
	Mean  []float64
	Scale []float64
}

// FitScaler computes the population mean and standard deviation of each column.
// Constant columns get a scale of 1 so they map to 0 instead of dividing by zero.
func FitScaler(rows [][]float64) (Scaler, error) {
	if len(rows) == 0 {
		return Scaler{}, fmt.Errorf("fit scaler: no rows")
	}
	dims := len(rows[0])
	mean := make([]float64, dims)
	scale := make([]float64, dims)

	for i, row := range rows {
		if len(row) != dims {
			return Scaler{}, fmt.Errorf("fit scaler: row %d has %d dims, want %d", i, len(row), dims)
		}
		for d, v := range row {
			mean[d] += v
		}
	}
	n := float64(len(rows))
	for d := range mean {
		mean[d] /= n
	}

	for _, row := range rows {
		for d, v := range row {
			diff := v - mean[d]
			scale[d] += diff * diff
		}
	}
	for d := range scale {
		scale[d] = math.Sqrt(scale[d] / n)
		if scale[d] == 0 {
			scale[d] = 1
		}
	}

	return Scaler{Mean: mean, Scale: scale}, nil
}

// Transform standardizes a vector with the fitted parameters.
func (s Scaler) Transform(v []float64) ([]float64, error) {
	if len(v) != len(s.Mean) {
		return nil, fmt.Errorf("%w: vector has %d dims, want %d", domain.ErrInvalidInput, len(v), len(s.Mean))
	}
	out := make([]float64, len(v))
	for d, x := range v {
		scale := s.Scale[d]
		if scale == 0 {
			scale = 1
		}
		out[d] = (x - s.Mean[d]) / scale
	}
	return out, nil
}

// GoalEncoder maps raw goal intensity vectors into the catalog's scaled goal space.
type GoalEncoder struct {
	scaler Scaler
}

func NewGoalEncoder(s Scaler) (*GoalEncoder, error) {
	if len(s.Mean) != domain.GoalDims || len(s.Scale) != domain.GoalDims {
		return nil, fmt.Errorf("goal scaler has %d/%d params, want %d",
			len(s.Mean), len(s.Scale), domain.GoalDims)
	}
	return &GoalEncoder{scaler: s}, nil
}

// Encode validates and scales a raw goal vector. Components follow
// domain.GoalColumns order and must be finite and non-negative.
func (e *GoalEncoder) Encode(raw []float64) ([]float64, error) {
	if len(raw) != domain.GoalDims {
		return nil, fmt.Errorf("%w: goal vector has %d dims, want %d", domain.ErrInvalidInput, len(raw), domain.GoalDims)
	}
	for i, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s is not a finite number", domain.ErrInvalidInput, domain.GoalColumns[i])
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: %s is negative", domain.ErrInvalidInput, domain.GoalColumns[i])
		}
	}
	scaled, err := e.scaler.Transform(raw)
	if err != nil {
		return nil, err
	}
	for i, v := range scaled {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %s is out of range", domain.ErrInvalidInput, domain.GoalColumns[i])
		}
	}
	return scaled, nil
}

// OneHotGoal builds the raw query for a single selected goal.
func OneHotGoal(goal string) ([]float64, error) {
	idx, ok := domain.GoalIndex(goal)
	if !ok {
		return nil, fmt.Errorf("%w: unknown goal %q", domain.ErrInvalidInput, goal)
	}
	v := make([]float64, domain.GoalDims)
	v[idx] = goalIntensity
	return v, nil
}
