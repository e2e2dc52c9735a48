// Package mlserve provides HTTP clients for the trained model services. The
// engine consumes them through narrow capability interfaces, keeping any
// specific modeling technology out of the core.
package mlserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zakatech/zakat-service/internal/models"
)

// PredictionClient calls the trained regression service.
type PredictionClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewPredictionClient initializes a prediction service client
func NewPredictionClient(url string, log *logrus.Logger) *PredictionClient {
	return &PredictionClient{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Prediction float64 `json:"prediction"`
	Error      string  `json:"error,omitempty"`
}

// Predict sends the fixed-order feature vector and returns the scalar amount.
func (c *PredictionClient) Predict(ctx context.Context, features []float64) (float64, error) {
	var resp predictResponse
	if err := postJSON(ctx, c.client, c.url, predictRequest{Features: features}, &resp); err != nil {
		return 0, err
	}
	if resp.Error != "" {
		return 0, fmt.Errorf("prediction service error: %s", resp.Error)
	}
	c.log.Debugf("Prediction service returned %.2f", resp.Prediction)
	return resp.Prediction, nil
}

// ForecastClient calls the trained time-series service.
type ForecastClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewForecastClient initializes a forecasting service client
func NewForecastClient(url string, log *logrus.Logger) *ForecastClient {
	return &ForecastClient{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

type forecastRequest struct {
	Series  []models.ContributionPoint `json:"series"`
	Periods int                        `json:"periods"`
}

type forecastResponse struct {
	Points []models.ForecastPoint `json:"points"`
	Model  string                 `json:"model"`
	Error  string                 `json:"error,omitempty"`
}

// Forecast sends the ordered series and horizon, returning one point per
// period with the service's confidence bounds and model descriptor.
func (c *ForecastClient) Forecast(ctx context.Context, series []models.ContributionPoint, periods int) ([]models.ForecastPoint, string, error) {
	var resp forecastResponse
	if err := postJSON(ctx, c.client, c.url, forecastRequest{Series: series, Periods: periods}, &resp); err != nil {
		return nil, "", err
	}
	if resp.Error != "" {
		return nil, "", fmt.Errorf("forecast service error: %s", resp.Error)
	}
	c.log.Debugf("Forecast service returned %d points from model %s", len(resp.Points), resp.Model)
	return resp.Points, resp.Model, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
