package zakat

import (
	"context"

	"github.com/zakatech/zakat-service/internal/models"
)

// Predictor is the narrow capability exposed by the trained regression model.
// Implementations must be safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// FeatureVector builds the fixed-order numeric feature vector the prediction
// service was trained on. The order is part of the model contract.
func FeatureVector(p *models.DonorProfile) []float64 {
	return []float64{
		float64(p.Age),
		p.Income,
		p.Savings,
		p.GoldValue,
		p.InvestmentValue,
		float64(p.FamilySize),
		float64(p.EmploymentStatus),
		float64(p.ContributionScore),
	}
}

// PredictZakat estimates a donor's Zakat liability. The statutory amount
// (total wealth x 2.5%) is computed locally and independently of the model.
// Donors below the Nisab threshold are not sent to the model: their predicted
// liability is zero. A model failure is returned as PredictionUnavailableError
// and never substituted with the statutory amount. Predictions are never
// cached: profiles are end-user-editable.
func PredictZakat(ctx context.Context, predictor Predictor, p *models.DonorProfile, nisabThreshold float64) (*models.PredictionResult, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}

	totalWealth := p.TotalWealth()
	verdict, err := Evaluate(totalWealth, nisabThreshold)
	if err != nil {
		return nil, err
	}

	result := &models.PredictionResult{
		StandardZakat: StandardZakat(totalWealth),
		TotalWealth:   totalWealth,
		IsEligible:    verdict.IsEligible,
	}
	if !verdict.IsEligible {
		return result, nil
	}

	if predictor == nil {
		return nil, &PredictionUnavailableError{Err: errNoPredictor}
	}
	predicted, err := predictor.Predict(ctx, FeatureVector(p))
	if err != nil {
		return nil, &PredictionUnavailableError{Err: err}
	}
	if predicted < 0 {
		predicted = 0
	}
	result.PredictedZakat = predicted

	if result.StandardZakat > 0 {
		d := (result.PredictedZakat - result.StandardZakat) / result.StandardZakat * 100
		result.DivergencePercent = &d
	}
	return result, nil
}

var errNoPredictor = &ConfigError{Name: "predictor", Reason: "prediction model not loaded"}
