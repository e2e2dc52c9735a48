package models

// EligibilityVerdict is the result of comparing total wealth to the Nisab threshold.
// Equality counts as eligible (inclusive boundary).
type EligibilityVerdict struct {
	TotalWealth    float64 `json:"total_wealth"`
	NisabThreshold float64 `json:"nisab_threshold"`
	IsEligible     bool    `json:"is_eligible"`
}

// HaulStatus reports how much of the mandatory lunar-year holding period has
// elapsed. Two states: Pending (elapsed < required) and Due (elapsed >= required).
type HaulStatus struct {
	StartDate       string `json:"start_date"` // Format: YYYY-MM-DD
	ElapsedDays     int    `json:"elapsed_days"`
	RequiredDays    int    `json:"required_days"`
	DaysRemaining   int    `json:"days_remaining"`
	ProgressPercent int    `json:"progress_percent"` // 0-100, floor
	DueDate         string `json:"due_date"`         // Format: YYYY-MM-DD
	IsDue           bool   `json:"is_due"`
	Message         string `json:"message"`
}

// PredictionResult pairs the model-predicted Zakat amount with the statutory
// 2.5% flat-rate amount. The two values have different meanings and are never
// conflated: a model failure is surfaced, not replaced by the statutory amount.
type PredictionResult struct {
	PredictedZakat    float64  `json:"predicted_zakat"`
	StandardZakat     float64  `json:"standard_zakat"`
	TotalWealth       float64  `json:"total_wealth"`
	IsEligible        bool     `json:"is_eligible"`
	DivergencePercent *float64 `json:"divergence_percent,omitempty"`
}
