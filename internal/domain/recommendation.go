package domain

// Recommendation modes.
const (
	ModeGoals   = "goals"
	ModeSimilar = "similar"
)

type Recommendation struct {
	Item  string  `json:"item"`
	Score float64 `json:"score"`
}

type RecommendationMeta struct {
	Mode        string `json:"mode"`
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []Recommendation
	CacheHit        bool
}

type BatchItemResult struct {
	Item            string           `json:"item"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Status          string           `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalItems int               `json:"total_items"`
	Results    []BatchItemResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
