package models

// Employment status codes used in donor profiles and model feature vectors.
const (
	EmploymentUnemployed   = 0
	EmploymentEmployed     = 1
	EmploymentSelfEmployed = 2
)

// DonorProfile holds the financial profile of a single donor.
// Wealth components (savings, gold, investments) are the Zakatable assets.
type DonorProfile struct {
	DonorID           string  `json:"donor_id"`
	Age               int     `json:"age"`
	Income            float64 `json:"income"`
	Savings           float64 `json:"savings"`
	GoldValue         float64 `json:"gold_value"`
	InvestmentValue   float64 `json:"investment_value"`
	FamilySize        int     `json:"family_size"`
	EmploymentStatus  int     `json:"employment_status"`
	ContributionScore int     `json:"contribution_score"` // 0-100 reliability score
	HaulStartDate     string  `json:"haul_start_date,omitempty"`
	LastPaymentDate   string  `json:"last_payment_date,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

// TotalWealth is the sum of the Zakatable asset components.
func (p *DonorProfile) TotalWealth() float64 {
	return p.Savings + p.GoldValue + p.InvestmentValue
}

// DonorRecord is a donor profile enriched with the known or predicted Zakat
// amount and assigned tier, as kept in the donor analytics store.
type DonorRecord struct {
	DonorProfile
	ZakatAmount float64 `json:"zakat_amount"`
	Tier        string  `json:"tier,omitempty"`
}
