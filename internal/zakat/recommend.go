package zakat

import (
	"fmt"

	"github.com/zakatech/zakat-service/internal/models"
)

// Recommend generates actionable advice for a donor from their profile and
// prediction result. Rules fire independently; a donor matching nothing gets
// the default consistency message.
func Recommend(p *models.DonorProfile, pred *models.PredictionResult) []models.Recommendation {
	var recs []models.Recommendation

	// Strong earning power but low liquidity: suggest monthly deduction.
	if p.Income > 60000 && p.Savings < 10000 {
		recs = append(recs, models.Recommendation{
			Type:        "strategy",
			Icon:        "ph-trend-up",
			Title:       "Optimize Cash Flow",
			Description: "You have strong earning power but low liquidity. Consider a monthly Zakat deduction to manage cash flow better.",
		})
	}

	if p.GoldValue > 10000 {
		recs = append(recs, models.Recommendation{
			Type:        "compliance",
			Icon:        "ph-coins",
			Title:       "Gold Assessment",
			Description: "Your gold assets are significant. Jewelry worn daily is often exempt (Uruf), while stored gold is fully Zakatable.",
		})
	}

	if p.InvestmentValue > p.Savings && p.InvestmentValue > 20000 {
		recs = append(recs, models.Recommendation{
			Type:        "info",
			Icon:        "ph-chart-pie-slice",
			Title:       "Investment Zakat",
			Description: "For your investment portfolio, Zakat is only due on the principal amount plus realized profits, not unrealized gains.",
		})
	}

	if pred != nil {
		if pred.PredictedZakat > 0 && pred.PredictedZakat < 200 {
			recs = append(recs, models.Recommendation{
				Type:        "warning",
				Icon:        "ph-warning-circle",
				Title:       "Near Threshold",
				Description: "You are just above the Nisab threshold. Your obligation is sensitive to small fluctuations in savings.",
			})
		}
		if pred.PredictedZakat > 1000 {
			recs = append(recs, models.Recommendation{
				Type:        "benefit",
				Icon:        "ph-receipt",
				Title:       "Tax Rebate",
				Description: fmt.Sprintf("Your Zakat payment of %.0f makes you eligible for a full tax rebate on your income tax. Keep your receipt!", pred.PredictedZakat),
			})
		}
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Type:        "general",
			Icon:        "ph-check-circle",
			Title:       "Maintain Consistency",
			Description: "Your financial profile is balanced. Continue your consistent Zakat contributions to purify your wealth.",
		})
	}
	return recs
}
