package service

import (
	"context"

	"github.com/zakatech/zakat-service/internal/models"
	"github.com/zakatech/zakat-service/internal/zakat"
)

// ForecastCollections runs the collection forecasting engine over the
// aggregated monthly contribution series.
func (s *Service) ForecastCollections(ctx context.Context, periods int) (*models.CollectionForecast, error) {
	series, err := s.repo.MonthlyCollectionSeries()
	if err != nil {
		return nil, err
	}
	forecast, err := zakat.ForecastCollections(ctx, s.forecaster, series, periods)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Forecast generated: %d historical points, %d forecast points, model %s",
		len(forecast.Historical), len(forecast.Forecast), forecast.Model)
	return forecast, nil
}

// RefreshSegmentation recomputes the full segmentation report and persists the
// fresh tier assignments.
func (s *Service) RefreshSegmentation() (*models.SegmentationReport, error) {
	donors, err := s.repo.ListDonors()
	if err != nil {
		return nil, err
	}

	threshold, _ := s.nisab.Current()
	report, err := zakat.Segment(donors, zakat.SegmentationConfig{
		TierCutoff:     s.config.TierCutoff,
		NisabThreshold: threshold,
		OverdueDays:    s.config.OverdueDays,
		HighRiskDays:   s.config.HighRiskDays,
	}, s.now())
	if err != nil {
		return nil, err
	}

	tiers := make(map[string]string, len(donors))
	for _, d := range donors {
		tiers[d.DonorID] = zakat.ClassifyTier(d.TotalWealth(), s.config.TierCutoff)
	}
	if err := s.repo.UpdateDonorTiers(tiers); err != nil {
		return nil, err
	}

	s.log.Infof("Segmentation refreshed: %d donors, %d at risk, potential collection %.2f",
		report.TotalDonors, report.AtRiskCount, report.PotentialCollection)
	return report, nil
}

// AnnualProjection derives a coarse collection projection from stored donor
// Zakat amounts.
func (s *Service) AnnualProjection() (*models.AnnualProjection, error) {
	donors, err := s.repo.ListDonors()
	if err != nil {
		return nil, err
	}

	p := &models.AnnualProjection{TotalDonors: len(donors)}
	for _, d := range donors {
		p.TotalAnnualForecast += d.ZakatAmount
		if d.ZakatAmount > 0 {
			p.EligibleDonors++
		}
	}
	p.MonthlyForecast = p.TotalAnnualForecast / 12
	p.QuarterlyForecast = p.TotalAnnualForecast / 4
	if len(donors) > 0 {
		p.AveragePerDonor = p.TotalAnnualForecast / float64(len(donors))
	}
	return p, nil
}

// Trends returns income/wealth vs Zakat observations for trend analysis.
func (s *Service) Trends() ([]models.TrendPoint, error) {
	donors, err := s.repo.ListDonors()
	if err != nil {
		return nil, err
	}
	points := make([]models.TrendPoint, 0, len(donors))
	for _, d := range donors {
		points = append(points, models.TrendPoint{
			Income:      d.Income,
			TotalWealth: d.TotalWealth(),
			ZakatAmount: d.ZakatAmount,
			Tier:        zakat.ClassifyTier(d.TotalWealth(), s.config.TierCutoff),
		})
	}
	return points, nil
}

// EmploymentBreakdown averages Zakat per employment status across all donors.
func (s *Service) EmploymentBreakdown() ([]models.EmploymentBreakdown, error) {
	donors, err := s.repo.ListDonors()
	if err != nil {
		return nil, err
	}
	return zakat.EmploymentBreakdown(donors), nil
}

// ExportAnonymized produces the anonymized donor export rows.
func (s *Service) ExportAnonymized() ([]models.ExportRow, error) {
	donors, err := s.repo.ListDonors()
	if err != nil {
		return nil, err
	}
	rows, err := zakat.AnonymizeRecords(donors, s.config.AnonSalt, s.config.TierCutoff)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Anonymized export prepared: %d rows", len(rows))
	return rows, nil
}

// reminderWindowDays is how far ahead of the due date the sweep starts
// notifying donors.
const reminderWindowDays = 7

// SendHaulReminders notifies users whose Haul is due or completes within the
// reminder window. Send failures are logged and skipped so one bad address
// cannot stall the sweep.
func (s *Service) SendHaulReminders() error {
	targets, err := s.repo.ListHaulReminderTargets()
	if err != nil {
		return err
	}

	sent := 0
	for _, t := range targets {
		status, err := zakat.HaulStatus(t.HaulStartDate, s.now())
		if err != nil {
			s.log.Warnf("Skipping reminder for %s: %v", t.Email, err)
			continue
		}
		if !status.IsDue && status.DaysRemaining > reminderWindowDays {
			continue
		}
		if err := s.mailer.SendHaulReminder(t.Email, t.FullName, status.DueDate, status.DaysRemaining, status.IsDue); err != nil {
			continue
		}
		sent++
	}
	s.log.Infof("Haul reminder sweep complete: %d of %d targets notified", sent, len(targets))
	return nil
}
