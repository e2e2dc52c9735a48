package zakat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/zakatech/zakat-service/internal/models"
)

type fakeForecaster struct {
	points []models.ForecastPoint
	model  string
	err    error
}

func (f *fakeForecaster) Forecast(_ context.Context, _ []models.ContributionPoint, _ int) ([]models.ForecastPoint, string, error) {
	return f.points, f.model, f.err
}

// monthlySeries builds n ascending monthly points starting at 100 and growing
// by 10 each month.
func monthlySeries(n int) []models.ContributionPoint {
	series := make([]models.ContributionPoint, n)
	for i := 0; i < n; i++ {
		series[i] = models.ContributionPoint{
			Period: fmt.Sprintf("%04d-%02d-01", 2020+i/12, i%12+1),
			Amount: float64(100 + 10*i),
		}
	}
	return series
}

func flatForecast(n int, start string, value float64) []models.ForecastPoint {
	points := make([]models.ForecastPoint, n)
	for i := 0; i < n; i++ {
		points[i] = models.ForecastPoint{
			Period:     fmt.Sprintf("2030-%02d-01", i+1),
			Forecast:   value,
			LowerBound: value * 0.85,
			UpperBound: value * 1.15,
		}
	}
	if start != "" {
		points[0].Period = start
	}
	return points
}

func TestForecastCollectionsSummary(t *testing.T) {
	series := monthlySeries(24)
	fc := &fakeForecaster{points: flatForecast(12, "2025-01-01", 400), model: "prophet-v2"}

	result, err := ForecastCollections(context.Background(), fc, series, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wantHist float64
	for _, p := range series {
		wantHist += p.Amount
	}
	if result.Summary.TotalHistorical != wantHist {
		t.Fatalf("expected total historical %v, got %v", wantHist, result.Summary.TotalHistorical)
	}
	if result.Summary.AverageMonthly != wantHist/24 {
		t.Fatalf("expected average %v, got %v", wantHist/24, result.Summary.AverageMonthly)
	}
	if result.Summary.TotalForecastHorizon != 400*12 {
		t.Fatalf("expected forecast total %v, got %v", 400.0*12, result.Summary.TotalForecastHorizon)
	}
	if result.Model != "prophet-v2" {
		t.Fatalf("expected model descriptor passed through, got %q", result.Model)
	}

	if result.Summary.YoYGrowthPercent == nil {
		t.Fatal("expected YoY growth with 24 historical points")
	}
	if math.IsNaN(*result.Summary.YoYGrowthPercent) || math.IsInf(*result.Summary.YoYGrowthPercent, 0) {
		t.Fatalf("YoY growth must be finite, got %v", *result.Summary.YoYGrowthPercent)
	}
	// Last 12 historical: 220..330 summed = 3300; forecast 4800.
	wantGrowth := (4800.0 - 3300.0) / 3300.0 * 100
	if math.Abs(*result.Summary.YoYGrowthPercent-wantGrowth) > 1e-9 {
		t.Fatalf("expected YoY growth %v, got %v", wantGrowth, *result.Summary.YoYGrowthPercent)
	}
}

func TestForecastCollectionsBridge(t *testing.T) {
	series := monthlySeries(12)
	fc := &fakeForecaster{points: flatForecast(6, "2021-01-01", 500), model: "prophet-v2"}

	result, err := ForecastCollections(context.Background(), fc, series, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := series[len(series)-1]
	if result.Bridge.Amount != last.Amount {
		t.Fatalf("bridge must carry the final historical amount %v, got %v", last.Amount, result.Bridge.Amount)
	}
	if result.Bridge.Period != "2021-01-01" {
		t.Fatalf("bridge must sit on the first forecast period, got %q", result.Bridge.Period)
	}
}

func TestForecastCollectionsYoYNilWithShortHistory(t *testing.T) {
	series := monthlySeries(11)
	fc := &fakeForecaster{points: flatForecast(12, "", 400)}

	result, err := ForecastCollections(context.Background(), fc, series, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary.YoYGrowthPercent != nil {
		t.Fatalf("expected nil YoY growth with %d historical points", len(series))
	}
}

func TestForecastCollectionsInsufficientHistory(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := ForecastCollections(context.Background(), &fakeForecaster{}, monthlySeries(n), 12)
		var histErr *InsufficientHistoryError
		if !errors.As(err, &histErr) {
			t.Fatalf("%d points: expected InsufficientHistoryError, got %v", n, err)
		}
		if histErr.Points != n {
			t.Fatalf("expected reported points %d, got %d", n, histErr.Points)
		}
	}
}

func TestForecastCollectionsServiceFailureSurfaced(t *testing.T) {
	fc := &fakeForecaster{err: errors.New("model timeout")}
	_, err := ForecastCollections(context.Background(), fc, monthlySeries(24), 12)
	var svcErr *ForecastServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ForecastServiceError, got %v", err)
	}
}

func TestForecastCollectionsEmptyServiceResponse(t *testing.T) {
	fc := &fakeForecaster{points: nil}
	_, err := ForecastCollections(context.Background(), fc, monthlySeries(24), 12)
	var svcErr *ForecastServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ForecastServiceError for empty response, got %v", err)
	}
}

func TestForecastCollectionsRejectsBadInput(t *testing.T) {
	fc := &fakeForecaster{points: flatForecast(12, "", 400)}

	_, err := ForecastCollections(context.Background(), fc, monthlySeries(24), 0)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for zero horizon, got %v", err)
	}

	unordered := monthlySeries(24)
	unordered[3], unordered[4] = unordered[4], unordered[3]
	_, err = ForecastCollections(context.Background(), fc, unordered, 12)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for unordered series, got %v", err)
	}
}
