package zakat

import (
	"context"
	"errors"

	"github.com/zakatech/zakat-service/internal/models"
)

// minHistoryPoints is the smallest series a forecast can be requested for;
// anything shorter carries no trend.
const minHistoryPoints = 2

// Forecaster is the narrow capability exposed by the trained time-series
// model. It returns one point per requested period, with confidence bounds,
// plus a descriptor of the model that produced them. Implementations must be
// safe for concurrent use.
type Forecaster interface {
	Forecast(ctx context.Context, series []models.ContributionPoint, periods int) ([]models.ForecastPoint, string, error)
}

// ForecastCollections forecasts aggregate future collections from an ascending
// historical series. All statistical post-processing (totals, averages,
// year-over-year growth, bridge stitching) happens here; the point forecasts
// and interval bounds come exclusively from the forecasting service. A service
// failure is surfaced as ForecastServiceError, never replaced by a naive
// linear projection.
func ForecastCollections(ctx context.Context, forecaster Forecaster, series []models.ContributionPoint, periods int) (*models.CollectionForecast, error) {
	if periods <= 0 {
		return nil, &ValidationError{Field: "periods", Reason: "must be a positive integer"}
	}
	if len(series) < minHistoryPoints {
		return nil, &InsufficientHistoryError{Points: len(series), Required: minHistoryPoints}
	}
	for i := 1; i < len(series); i++ {
		if series[i].Period < series[i-1].Period {
			return nil, &ValidationError{Field: "series", Reason: "periods must be ordered ascending"}
		}
	}

	if forecaster == nil {
		return nil, &ForecastServiceError{Err: errors.New("forecast model not loaded")}
	}
	points, model, err := forecaster.Forecast(ctx, series, periods)
	if err != nil {
		return nil, &ForecastServiceError{Err: err}
	}
	if len(points) == 0 {
		return nil, &ForecastServiceError{Err: errors.New("service returned no forecast points")}
	}

	summary := models.ForecastSummary{ForecastPeriods: len(points)}
	for _, h := range series {
		summary.TotalHistorical += h.Amount
	}
	summary.AverageMonthly = summary.TotalHistorical / float64(len(series))
	for _, f := range points {
		summary.TotalForecastHorizon += f.Forecast
	}
	summary.YoYGrowthPercent = yoyGrowth(series, points)

	last := series[len(series)-1]
	return &models.CollectionForecast{
		Historical: series,
		Forecast:   points,
		// The bridge pairs the final historical amount with the first forecast
		// period so the rendered series connect without a visual gap.
		Bridge:  models.ContributionPoint{Period: points[0].Period, Amount: last.Amount},
		Summary: summary,
		Model:   model,
	}, nil
}

// yoyGrowth compares the sum of the last 12 forecast points against the sum of
// the last 12 historical points. Returns nil rather than dividing by zero when
// fewer than 12 historical points (or forecast points) exist.
func yoyGrowth(series []models.ContributionPoint, points []models.ForecastPoint) *float64 {
	if len(series) < 12 || len(points) < 12 {
		return nil
	}
	var histSum float64
	for _, h := range series[len(series)-12:] {
		histSum += h.Amount
	}
	if histSum == 0 {
		return nil
	}
	var fcSum float64
	for _, f := range points[len(points)-12:] {
		fcSum += f.Forecast
	}
	growth := (fcSum - histSum) / histSum * 100
	return &growth
}
