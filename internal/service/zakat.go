package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zakatech/zakat-service/internal/models"
	"github.com/zakatech/zakat-service/internal/zakat"
)

// NisabInfo describes the current threshold snapshot.
type NisabInfo struct {
	NisabThreshold float64   `json:"nisab_threshold"`
	Currency       string    `json:"currency"`
	RefreshedAt    time.Time `json:"refreshed_at"`
	Description    string    `json:"description"`
}

// NisabInfo returns the current Nisab threshold snapshot.
func (s *Service) NisabInfo() NisabInfo {
	threshold, refreshed := s.nisab.Current()
	return NisabInfo{
		NisabThreshold: threshold,
		Currency:       "MYR",
		RefreshedAt:    refreshed,
		Description:    "Approximately 85 grams of gold at current market rate",
	}
}

// CheckNisab evaluates wealth components against the current threshold.
func (s *Service) CheckNisab(savings, goldValue, investmentValue float64) (*models.EligibilityVerdict, error) {
	total, err := zakat.TotalWealth(savings, goldValue, investmentValue)
	if err != nil {
		return nil, err
	}
	threshold, _ := s.nisab.Current()
	return zakat.Evaluate(total, threshold)
}

// HaulStatus computes the Haul holding-period state for a start date.
func (s *Service) HaulStatus(startDate string) (*models.HaulStatus, error) {
	return zakat.HaulStatus(startDate, s.now())
}

// PredictZakat runs the prediction engine for a profile and attaches
// rule-based recommendations.
func (s *Service) PredictZakat(ctx context.Context, p *models.DonorProfile) (*models.PredictionResult, []models.Recommendation, error) {
	threshold, _ := s.nisab.Current()
	result, err := zakat.PredictZakat(ctx, s.predictor, p, threshold)
	if err != nil {
		return nil, nil, err
	}
	return result, zakat.Recommend(p, result), nil
}

// GetProfile returns a user's financial profile.
func (s *Service) GetProfile(userID int64) (*models.DonorProfile, error) {
	return s.repo.GetProfile(userID)
}

// UpdateProfile validates and stores a user's financial profile. A new
// submission supersedes the previous one.
func (s *Service) UpdateProfile(userID int64, p *models.DonorProfile) error {
	if err := zakat.ValidateProfile(p); err != nil {
		return err
	}
	if p.DonorID == "" {
		p.DonorID = fmt.Sprintf("MZ%d", userID)
	}
	if err := s.repo.UpsertProfile(userID, p); err != nil {
		return err
	}
	s.log.Infof("Profile updated for user %d", userID)
	return nil
}

// ContributionHistory returns a user's payment record with totals.
func (s *Service) ContributionHistory(userID int64) (*models.ContributionHistory, error) {
	list, err := s.repo.ListContributions(userID)
	if err != nil {
		return nil, err
	}
	h := &models.ContributionHistory{History: list}
	years := map[int]struct{}{}
	for _, c := range list {
		h.TotalContributed += c.Amount
		years[c.Year] = struct{}{}
	}
	h.YearsActive = len(years)
	return h, nil
}

// AddContribution validates and records a payment.
func (s *Service) AddContribution(userID int64, c *models.Contribution) error {
	if c.Amount <= 0 {
		return &zakat.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	paid, err := time.Parse("2006-01-02", c.PaymentDate)
	if err != nil {
		return &zakat.InvalidDateError{Field: "payment_date", Value: c.PaymentDate, Reason: "expected YYYY-MM-DD"}
	}
	if paid.After(s.now()) {
		return &zakat.InvalidDateError{Field: "payment_date", Value: c.PaymentDate, Reason: "must not be in the future"}
	}
	c.UserID = userID
	if c.Year == 0 {
		c.Year = paid.Year()
	}
	if err := s.repo.AddContribution(c); err != nil {
		return err
	}
	s.log.Infof("Contribution of %.2f recorded for user %d", c.Amount, userID)
	return nil
}
