package models

// ForecastPoint is one forecast period produced by the external forecasting
// service. Confidence bounds come from the service; this system never invents them.
type ForecastPoint struct {
	Period     string  `json:"period"` // Format: YYYY-MM-DD
	Forecast   float64 `json:"forecast"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// ForecastSummary holds metrics derived from the historical and forecast series.
// YoYGrowthPercent is nil when fewer than 12 historical points exist.
type ForecastSummary struct {
	TotalHistorical      float64  `json:"total_historical"`
	AverageMonthly       float64  `json:"average_monthly"`
	TotalForecastHorizon float64  `json:"total_forecast_horizon"`
	YoYGrowthPercent     *float64 `json:"yoy_growth_percent"`
	ForecastPeriods      int      `json:"forecast_periods"`
}

// CollectionForecast is the full forecast response: historical series, forecast
// series with a bridge point connecting the two, and summary statistics.
type CollectionForecast struct {
	Historical []ContributionPoint `json:"historical"`
	Forecast   []ForecastPoint     `json:"forecast"`
	Bridge     ContributionPoint   `json:"bridge"`
	Summary    ForecastSummary     `json:"summary"`
	Model      string              `json:"model"`
}

// AnnualProjection is a coarse projection from stored donor Zakat amounts.
type AnnualProjection struct {
	TotalAnnualForecast float64 `json:"total_annual_forecast"`
	MonthlyForecast     float64 `json:"monthly_forecast"`
	QuarterlyForecast   float64 `json:"quarterly_forecast"`
	AveragePerDonor     float64 `json:"average_per_donor"`
	EligibleDonors      int     `json:"eligible_donors"`
	TotalDonors         int     `json:"total_donors"`
}
