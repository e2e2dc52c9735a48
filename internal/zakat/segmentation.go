package zakat

import (
	"sort"
	"time"

	"github.com/zakatech/zakat-service/internal/models"
)

// SegmentationConfig carries the externally supplied cutoffs for a
// segmentation run. None of these values are hardcoded in the engine.
type SegmentationConfig struct {
	TierCutoff     float64 // wealth separating High-Net-Worth from Mass-Market
	NisabThreshold float64 // donors below it carry no recoverable obligation
	OverdueDays    int     // days since payment after which a donor is at risk
	HighRiskDays   int     // days since payment after which risk escalates to high
}

func (c SegmentationConfig) validate() error {
	if c.TierCutoff <= 0 {
		return &ConfigError{Name: "tier_cutoff", Reason: "unset or non-positive"}
	}
	if c.NisabThreshold <= 0 {
		return &ConfigError{Name: "nisab_threshold", Reason: "unset or non-positive"}
	}
	if c.OverdueDays <= 0 {
		return &ConfigError{Name: "overdue_days", Reason: "unset or non-positive"}
	}
	if c.HighRiskDays < c.OverdueDays {
		return &ConfigError{Name: "high_risk_days", Reason: "must be at least overdue_days"}
	}
	return nil
}

// ClassifyTier assigns a donor to a wealth tier by the configured cutoff.
func ClassifyTier(totalWealth, cutoff float64) string {
	if totalWealth >= cutoff {
		return models.TierHighNetWorth
	}
	return models.TierMassMarket
}

// Segment classifies every donor into a wealth tier, aggregates tier-level
// statistics and flags donors overdue on payment. The report is recomputed in
// full on each invocation so tier membership and aggregates can never drift
// apart. Every donor lands in exactly one tier.
func Segment(records []models.DonorRecord, cfg SegmentationConfig, now time.Time) (*models.SegmentationReport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	type agg struct {
		count       int
		totalZakat  float64
		totalWealth float64
	}
	tiers := map[string]*agg{}

	report := &models.SegmentationReport{TotalDonors: len(records)}

	for _, rec := range records {
		wealth := rec.TotalWealth()
		tier := ClassifyTier(wealth, cfg.TierCutoff)

		a := tiers[tier]
		if a == nil {
			a = &agg{}
			tiers[tier] = a
		}
		a.count++
		a.totalZakat += rec.ZakatAmount
		a.totalWealth += wealth

		entry, flagged := atRisk(rec, tier, wealth, cfg, now)
		if flagged {
			report.AtRiskDonors = append(report.AtRiskDonors, entry)
			report.PotentialCollection += StandardZakat(wealth)
		}
	}

	for tier, a := range tiers {
		report.Segments = append(report.Segments, models.DonorSegment{
			Tier:          tier,
			Count:         a.count,
			TotalZakat:    a.totalZakat,
			AverageZakat:  a.totalZakat / float64(a.count),
			AverageWealth: a.totalWealth / float64(a.count),
		})
	}
	sort.Slice(report.Segments, func(i, j int) bool {
		return report.Segments[i].Tier < report.Segments[j].Tier
	})
	sort.Slice(report.AtRiskDonors, func(i, j int) bool {
		return report.AtRiskDonors[i].TotalWealth > report.AtRiskDonors[j].TotalWealth
	})
	report.AtRiskCount = len(report.AtRiskDonors)
	return report, nil
}

// atRisk flags a donor whose last payment is older than the overdue window.
// Donors below Nisab carry no obligation and are never flagged; donors with no
// recorded payment cannot be aged and are skipped.
func atRisk(rec models.DonorRecord, tier string, wealth float64, cfg SegmentationConfig, now time.Time) (models.AtRiskEntry, bool) {
	if wealth < cfg.NisabThreshold || rec.LastPaymentDate == "" {
		return models.AtRiskEntry{}, false
	}
	last, err := time.Parse(dateLayout, rec.LastPaymentDate)
	if err != nil || last.After(now) {
		return models.AtRiskEntry{}, false
	}
	days := int(now.Sub(last).Hours() / 24)
	if days <= cfg.OverdueDays {
		return models.AtRiskEntry{}, false
	}
	level := models.RiskMedium
	if days > cfg.HighRiskDays {
		level = models.RiskHigh
	}
	return models.AtRiskEntry{
		DonorID:          rec.DonorID,
		TotalWealth:      wealth,
		Income:           rec.Income,
		Tier:             tier,
		LastPaymentDate:  rec.LastPaymentDate,
		DaysSincePayment: days,
		RiskLevel:        level,
	}, true
}

// EmploymentBreakdown averages Zakat amounts per employment status.
func EmploymentBreakdown(records []models.DonorRecord) []models.EmploymentBreakdown {
	totals := map[int]*models.EmploymentBreakdown{}
	for _, rec := range records {
		b := totals[rec.EmploymentStatus]
		if b == nil {
			b = &models.EmploymentBreakdown{EmploymentStatus: rec.EmploymentStatus}
			totals[rec.EmploymentStatus] = b
		}
		b.DonorCount++
		b.AverageZakat += rec.ZakatAmount
	}
	var out []models.EmploymentBreakdown
	for _, b := range totals {
		b.AverageZakat /= float64(b.DonorCount)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EmploymentStatus < out[j].EmploymentStatus
	})
	return out
}
