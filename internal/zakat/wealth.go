package zakat

import (
	"math"

	"github.com/zakatech/zakat-service/internal/models"
)

// StandardRate is the statutory flat Zakat rate applied to qualifying wealth.
const StandardRate = 0.025

// TotalWealth sums the declared asset categories into a total wealth figure.
// All inputs must be non-negative finite numbers.
func TotalWealth(savings, goldValue, investmentValue float64) (float64, error) {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"savings", savings},
		{"gold_value", goldValue},
		{"investment_value", investmentValue},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return 0, &ValidationError{Field: c.name, Reason: "must be a finite number"}
		}
		if c.value < 0 {
			return 0, &ValidationError{Field: c.name, Reason: "must be non-negative"}
		}
	}
	return savings + goldValue + investmentValue, nil
}

// StandardZakat computes the statutory 2.5% amount for the given total wealth.
func StandardZakat(totalWealth float64) float64 {
	return totalWealth * StandardRate
}

// ValidateProfile checks a donor profile against the data-model invariants:
// non-negative monetary fields, positive age and a known employment status.
func ValidateProfile(p *models.DonorProfile) error {
	if p == nil {
		return &ValidationError{Field: "profile", Reason: "missing"}
	}
	if p.Age <= 0 {
		return &ValidationError{Field: "age", Reason: "must be positive"}
	}
	if p.FamilySize <= 0 {
		return &ValidationError{Field: "family_size", Reason: "must be positive"}
	}
	if p.Income < 0 {
		return &ValidationError{Field: "income", Reason: "must be non-negative"}
	}
	if p.ContributionScore < 0 || p.ContributionScore > 100 {
		return &ValidationError{Field: "contribution_score", Reason: "must be between 0 and 100"}
	}
	switch p.EmploymentStatus {
	case models.EmploymentUnemployed, models.EmploymentEmployed, models.EmploymentSelfEmployed:
	default:
		return &ValidationError{Field: "employment_status", Reason: "unknown status code"}
	}
	if _, err := TotalWealth(p.Savings, p.GoldValue, p.InvestmentValue); err != nil {
		return err
	}
	return nil
}
