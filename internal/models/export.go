package models

// ExportRow is one anonymized donor record safe for external sharing. Direct
// identifiers are replaced by a stable one-way token; exact income/wealth/age
// values are additionally bucketed for k-anonymity.
type ExportRow struct {
	AnonymizedID     string  `json:"anonymized_id"`
	AgeGroup         string  `json:"age_group"`
	IncomeBucket     string  `json:"income_bucket"`
	WealthBucket     string  `json:"wealth_bucket"`
	TotalWealth      float64 `json:"total_wealth"`
	FamilySize       int     `json:"family_size"`
	EmploymentStatus int     `json:"employment_status"`
	Tier             string  `json:"tier"`
	ZakatAmount      float64 `json:"zakat_amount"`
}
