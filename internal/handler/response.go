package handler

import "github.com/actuallystonmai/nutriguide-service/internal/domain"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type GoalInfo struct {
	Goal        string `json:"goal"`
	DisplayName string `json:"display_name"`
}

type GoalsResponse struct {
	Goals []GoalInfo `json:"goals"`
}

type ItemsResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

type NutritionResponse struct {
	*domain.NutritionFacts
	GoalMatch []domain.GoalScore `json:"goal_match"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type GoalsRequest struct {
	Goal   string    `json:"goal" validate:"omitempty,oneof=weight_management muscle_development energy_boost heart_health immunity_strength"`
	Vector []float64 `json:"vector" validate:"omitempty,len=5,dive,gte=0"`
}

type SimilarRequest struct {
	Item string `json:"item" validate:"required,max=200"`
}
