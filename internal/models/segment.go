package models

// Donor tiers used for segmentation.
const (
	TierHighNetWorth = "High-Net-Worth"
	TierMassMarket   = "Mass-Market"
)

// Risk levels for overdue donors.
const (
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// DonorSegment aggregates one wealth tier. Recomputed in full on each
// segmentation run, never patched incrementally.
type DonorSegment struct {
	Tier          string  `json:"tier"`
	Count         int     `json:"count"`
	TotalZakat    float64 `json:"total_zakat"`
	AverageZakat  float64 `json:"avg_zakat"`
	AverageWealth float64 `json:"avg_wealth"`
}

// AtRiskEntry flags a donor overdue on payment.
type AtRiskEntry struct {
	DonorID          string  `json:"donor_id"`
	TotalWealth      float64 `json:"total_wealth"`
	Income           float64 `json:"income"`
	Tier             string  `json:"tier"`
	LastPaymentDate  string  `json:"last_payment_date"`
	DaysSincePayment int     `json:"days_since_payment"`
	RiskLevel        string  `json:"risk_level"`
}

// SegmentationReport is the full output of one segmentation run.
type SegmentationReport struct {
	Segments            []DonorSegment `json:"segments"`
	TotalDonors         int            `json:"total_donors"`
	AtRiskDonors        []AtRiskEntry  `json:"at_risk_donors"`
	AtRiskCount         int            `json:"at_risk_count"`
	PotentialCollection float64        `json:"potential_collection"`
}

// EmploymentBreakdown is average Zakat grouped by employment status.
type EmploymentBreakdown struct {
	EmploymentStatus int     `json:"employment_status"`
	DonorCount       int     `json:"donor_count"`
	AverageZakat     float64 `json:"avg_zakat"`
}

// TrendPoint is one income-vs-zakat observation for trend analysis.
type TrendPoint struct {
	Income      float64 `json:"income"`
	TotalWealth float64 `json:"total_wealth"`
	ZakatAmount float64 `json:"zakat_amount"`
	Tier        string  `json:"tier"`
}
