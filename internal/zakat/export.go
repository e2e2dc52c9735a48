package zakat

import (
	"github.com/zakatech/zakat-service/internal/models"
	"github.com/zakatech/zakat-service/internal/utils"
)

// BucketIncome groups annual income into coarse bands for k-anonymity.
func BucketIncome(income float64) string {
	switch {
	case income < 20000:
		return "Low"
	case income < 50000:
		return "Lower-Middle"
	case income < 100000:
		return "Middle"
	case income < 200000:
		return "Upper-Middle"
	default:
		return "High"
	}
}

// BucketWealth groups total wealth into coarse bands.
func BucketWealth(wealth float64) string {
	switch {
	case wealth < 22000:
		return "Below Nisab"
	case wealth < 50000:
		return "Nisab-50K"
	case wealth < 100000:
		return "50K-100K"
	case wealth < 250000:
		return "100K-250K"
	default:
		return "250K+"
	}
}

// BucketAge groups age into generational bands.
func BucketAge(age int) string {
	switch {
	case age < 30:
		return "Young Adult (18-29)"
	case age < 45:
		return "Adult (30-44)"
	case age < 60:
		return "Middle-Aged (45-59)"
	default:
		return "Senior (60+)"
	}
}

// AnonymizeRecords transforms donor records into an export view with direct
// identifiers replaced by stable one-way tokens and exact income/wealth/age
// bucketed. A record missing a required field fails the whole export: partial
// data is rejected outright rather than silently dropped.
func AnonymizeRecords(records []models.DonorRecord, salt string, tierCutoff float64) ([]models.ExportRow, error) {
	if salt == "" {
		return nil, &ConfigError{Name: "anonymization_salt", Reason: "unset"}
	}
	rows := make([]models.ExportRow, 0, len(records))
	for i, rec := range records {
		if rec.DonorID == "" {
			return nil, &ExportError{Row: i, Field: "donor_id", Reason: "missing"}
		}
		if rec.Age <= 0 {
			return nil, &ExportError{Row: i, Field: "age", Reason: "missing or non-positive"}
		}
		wealth, err := TotalWealth(rec.Savings, rec.GoldValue, rec.InvestmentValue)
		if err != nil {
			return nil, &ExportError{Row: i, Field: "wealth", Reason: err.Error()}
		}
		tier := rec.Tier
		if tier == "" {
			tier = ClassifyTier(wealth, tierCutoff)
		}
		rows = append(rows, models.ExportRow{
			AnonymizedID:     utils.AnonymousToken(rec.DonorID, salt),
			AgeGroup:         BucketAge(rec.Age),
			IncomeBucket:     BucketIncome(rec.Income),
			WealthBucket:     BucketWealth(wealth),
			TotalWealth:      wealth,
			FamilySize:       rec.FamilySize,
			EmploymentStatus: rec.EmploymentStatus,
			Tier:             tier,
			ZakatAmount:      rec.ZakatAmount,
		})
	}
	return rows, nil
}
