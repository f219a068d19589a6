package classifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

func probabilities(hot int, p float64) []float64 {
	probs := make([]float64, len(ClassLabels))
	rest := (1 - p) / float64(len(probs)-1)
	for i := range probs {
		probs[i] = rest
	}
	probs[hot] = p
	return probs
}

func predictServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		img, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("fake-jpeg"), img)

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPredict(t *testing.T) {
	tests := []struct {
		name         string
		hot          int
		wantLabel    string
		wantReadable string
		wantItem     string
	}{
		{name: "plain label", hot: 12, wantLabel: "nasi_goreng", wantReadable: "Nasi Goreng", wantItem: "Nasi Goreng"},
		{name: "aliased label", hot: 18, wantLabel: "sate", wantReadable: "Sate", wantItem: "Sate Ayam"},
		{name: "ikan goreng maps to ikan bakar", hot: 9, wantLabel: "ikan_goreng", wantReadable: "Ikan Goreng", wantItem: "Ikan Bakar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := predictServer(t, http.StatusOK, predictResponse{Predictions: [][]float64{probabilities(tt.hot, 0.9)}})
			c := NewClient(srv.URL, time.Second, zap.NewNop())

			pred, err := c.Predict(context.Background(), []byte("fake-jpeg"), "image/jpeg")
			require.NoError(t, err)

			assert.Equal(t, tt.wantLabel, pred.Label)
			assert.Equal(t, tt.wantReadable, pred.ReadableLabel)
			assert.Equal(t, tt.wantItem, pred.NutritionItem)
			assert.InDelta(t, 0.9, pred.Confidence, 1e-12)
		})
	}
}

func TestPredict_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
	}{
		{name: "server error", status: http.StatusInternalServerError, body: map[string]string{"error": "boom"}},
		{name: "wrong shape", status: http.StatusOK, body: predictResponse{Predictions: [][]float64{{0.5, 0.5}}}},
		{name: "no predictions", status: http.StatusOK, body: predictResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := predictServer(t, tt.status, tt.body)
			c := NewClient(srv.URL, time.Second, zap.NewNop())

			_, err := c.Predict(context.Background(), []byte("fake-jpeg"), "image/jpeg")
			assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
		})
	}
}

func TestPredict_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	for i := 0; i < failureThreshold+3; i++ {
		_, err := c.Predict(context.Background(), []byte("x"), "image/png")
		assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
	}

	assert.Equal(t, failureThreshold, calls)
}

func TestReadableLabel(t *testing.T) {
	assert.Equal(t, "Martabak Telur", ReadableLabel("martabak_telur"))
	assert.Equal(t, "Rendang", ReadableLabel("rendang"))
	assert.Equal(t, "Bakso Ayam", NutritionItem(ReadableLabel("bakso")))
}
