package zakat

import (
	"errors"
	"math"
	"testing"

	"github.com/zakatech/zakat-service/internal/models"
)

func TestTotalWealthSums(t *testing.T) {
	tests := []struct {
		name                       string
		savings, gold, investments float64
		want                       float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"savings only", 1500.50, 0, 0, 1500.50},
		{"all components", 20000, 5000, 3000, 28000},
		{"fractional", 0.1, 0.2, 0.3, 0.6000000000000001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalWealth(tt.savings, tt.gold, tt.investments)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTotalWealthRejectsBadInput(t *testing.T) {
	tests := []struct {
		name                       string
		savings, gold, investments float64
		wantField                  string
	}{
		{"negative savings", -1, 0, 0, "savings"},
		{"negative gold", 0, -0.01, 0, "gold_value"},
		{"negative investments", 0, 0, -100, "investment_value"},
		{"NaN savings", math.NaN(), 0, 0, "savings"},
		{"infinite gold", 0, math.Inf(1), 0, "gold_value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TotalWealth(tt.savings, tt.gold, tt.investments)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Fatalf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestStandardZakatIsFlatRate(t *testing.T) {
	if got := StandardZakat(28000); got != 700 {
		t.Fatalf("expected 700.00, got %v", got)
	}
	if got := StandardZakat(0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestValidateProfile(t *testing.T) {
	valid := func() *models.DonorProfile {
		return &models.DonorProfile{
			DonorID:           "MZ1001",
			Age:               35,
			Income:            60000,
			Savings:           20000,
			GoldValue:         5000,
			InvestmentValue:   3000,
			FamilySize:        4,
			EmploymentStatus:  models.EmploymentEmployed,
			ContributionScore: 70,
		}
	}

	if err := ValidateProfile(valid()); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*models.DonorProfile)
		wantField string
	}{
		{"zero age", func(p *models.DonorProfile) { p.Age = 0 }, "age"},
		{"negative income", func(p *models.DonorProfile) { p.Income = -1 }, "income"},
		{"zero family", func(p *models.DonorProfile) { p.FamilySize = 0 }, "family_size"},
		{"unknown employment", func(p *models.DonorProfile) { p.EmploymentStatus = 7 }, "employment_status"},
		{"score out of range", func(p *models.DonorProfile) { p.ContributionScore = 101 }, "contribution_score"},
		{"negative savings", func(p *models.DonorProfile) { p.Savings = -5 }, "savings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := ValidateProfile(p)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Fatalf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}

	if err := ValidateProfile(nil); err == nil {
		t.Fatal("expected error for nil profile")
	}
}
