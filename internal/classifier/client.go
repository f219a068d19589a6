package classifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

const (
	defaultTimeout   = 10 * time.Second
	failureThreshold = 5
	maxErrorBody     = 512
)

// Client calls the external image classification service. The service
// receives the raw image bytes and answers {"predictions": [[p0, ..., pN]]},
// one probability per entry of ClassLabels.
type Client struct {
	url        string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]float64]
	labels     []string
	logger     *zap.Logger
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		labels:     ClassLabels,
		logger:     logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]float64](gobreaker.Settings{
		Name:        "classifier",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("classifier circuit breaker state change",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return c
}

// Predict classifies an image and returns the most probable dish.
func (c *Client) Predict(ctx context.Context, image []byte, contentType string) (domain.Prediction, error) {
	probs, err := c.breaker.Execute(func() ([]float64, error) {
		return c.fetch(ctx, image, contentType)
	})
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	label := c.labels[best]
	readable := ReadableLabel(label)
	return domain.Prediction{
		Label:         label,
		ReadableLabel: readable,
		NutritionItem: NutritionItem(readable),
		Confidence:    probs[best],
	}, nil
}

func (c *Client) fetch(ctx context.Context, image []byte, contentType string) ([]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("predict returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	if len(out.Predictions) == 0 || len(out.Predictions[0]) != len(c.labels) {
		return nil, fmt.Errorf("predict response has unexpected shape")
	}
	return out.Predictions[0], nil
}
