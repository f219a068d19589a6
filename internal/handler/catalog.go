package handler

import (
	"net/http"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

// GET /goals
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals := make([]GoalInfo, 0, domain.GoalDims)
	for _, g := range domain.GoalColumns {
		goals = append(goals, GoalInfo{Goal: g, DisplayName: domain.GoalDisplayNames[g]})
	}
	h.writeJSON(w, http.StatusOK, GoalsResponse{Goals: goals})
}

// GET /items?mode=goals|similar
//
// mode=similar lists the items that can seed a nutrient similarity query.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	var items []string
	switch mode := r.URL.Query().Get("mode"); mode {
	case "", domain.ModeGoals:
		items = h.service.Items()
	case domain.ModeSimilar:
		items = h.service.SimilarCandidates()
	default:
		h.writeError(w, http.StatusBadRequest, "invalid_parameter", "mode must be goals or similar")
		return
	}
	h.writeJSON(w, http.StatusOK, ItemsResponse{Items: items, Total: len(items)})
}

// GET /items/{item}/nutrition
func (h *Handler) GetNutrition(w http.ResponseWriter, r *http.Request) {
	item, ok := pathParam(r, "item")
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid item parameter")
		return
	}

	facts, err := h.service.Nutrition(r.Context(), item)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, NutritionResponse{
		NutritionFacts: facts,
		GoalMatch:      facts.GoalMatch(),
	})
}
