package zakat

import (
	"errors"
	"testing"
	"time"

	"github.com/zakatech/zakat-service/internal/models"
)

var segNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func segConfig() SegmentationConfig {
	return SegmentationConfig{
		TierCutoff:     100000,
		NisabThreshold: 22000,
		OverdueDays:    400,
		HighRiskDays:   600,
	}
}

func donor(id string, savings float64, lastPaidDaysAgo int) models.DonorRecord {
	rec := models.DonorRecord{
		DonorProfile: models.DonorProfile{
			DonorID:          id,
			Age:              40,
			Income:           50000,
			Savings:          savings,
			FamilySize:       3,
			EmploymentStatus: models.EmploymentEmployed,
		},
		ZakatAmount: savings * 0.025,
	}
	if lastPaidDaysAgo >= 0 {
		rec.LastPaymentDate = segNow.AddDate(0, 0, -lastPaidDaysAgo).Format("2006-01-02")
	}
	return rec
}

func TestSegmentTierCountsCoverAllDonors(t *testing.T) {
	records := []models.DonorRecord{
		donor("MZ1", 150000, 30),
		donor("MZ2", 250000, 90),
		donor("MZ3", 30000, 10),
		donor("MZ4", 60000, 200),
		donor("MZ5", 5000, 50),
	}

	report, err := Segment(records, segConfig(), segNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, seg := range report.Segments {
		total += seg.Count
	}
	if total != len(records) {
		t.Fatalf("tier counts sum to %d, want %d", total, len(records))
	}
	if report.TotalDonors != len(records) {
		t.Fatalf("expected %d total donors, got %d", len(records), report.TotalDonors)
	}
	if report.AtRiskCount > report.TotalDonors {
		t.Fatal("at-risk count must never exceed total donors")
	}
}

func TestSegmentTierClassification(t *testing.T) {
	records := []models.DonorRecord{
		donor("MZ1", 100000, 30), // boundary: cutoff is inclusive for HNW
		donor("MZ2", 99999, 30),
	}
	report, err := Segment(records, segConfig(), segNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, seg := range report.Segments {
		switch seg.Tier {
		case models.TierHighNetWorth:
			if seg.Count != 1 {
				t.Fatalf("expected 1 HNW donor, got %d", seg.Count)
			}
			if seg.AverageWealth != 100000 {
				t.Fatalf("expected avg wealth 100000, got %v", seg.AverageWealth)
			}
		case models.TierMassMarket:
			if seg.Count != 1 {
				t.Fatalf("expected 1 mass-market donor, got %d", seg.Count)
			}
		default:
			t.Fatalf("unexpected tier %q", seg.Tier)
		}
	}
}

func TestSegmentAtRiskLevels(t *testing.T) {
	records := []models.DonorRecord{
		donor("recent", 50000, 100),   // not at risk
		donor("medium", 50000, 450),   // overdue, medium
		donor("boundary", 50000, 600), // exactly at high cutoff stays medium
		donor("high", 50000, 700),     // high risk
		donor("poor", 5000, 700),      // below Nisab: never flagged
		donor("unknown", 50000, -1),   // no payment on record: skipped
	}

	report, err := Segment(records, segConfig(), segNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	levels := map[string]string{}
	for _, e := range report.AtRiskDonors {
		levels[e.DonorID] = e.RiskLevel
	}
	if len(levels) != 3 {
		t.Fatalf("expected 3 at-risk donors, got %d (%v)", len(levels), levels)
	}
	if levels["medium"] != models.RiskMedium {
		t.Fatalf("expected medium risk, got %q", levels["medium"])
	}
	if levels["boundary"] != models.RiskMedium {
		t.Fatalf("600 days is not beyond the high cutoff, got %q", levels["boundary"])
	}
	if levels["high"] != models.RiskHigh {
		t.Fatalf("expected high risk, got %q", levels["high"])
	}

	// potential_collection sums the statutory 2.5% across flagged donors.
	want := 3 * 50000 * 0.025
	if report.PotentialCollection != want {
		t.Fatalf("expected potential collection %v, got %v", want, report.PotentialCollection)
	}
}

func TestSegmentAggregates(t *testing.T) {
	records := []models.DonorRecord{
		donor("MZ1", 40000, 10),
		donor("MZ2", 60000, 10),
	}
	report, err := Segment(records, segConfig(), segNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Segments) != 1 {
		t.Fatalf("expected a single tier, got %d", len(report.Segments))
	}
	seg := report.Segments[0]
	if seg.AverageWealth != 50000 {
		t.Fatalf("expected avg wealth 50000, got %v", seg.AverageWealth)
	}
	wantZakat := 40000*0.025 + 60000*0.025
	if seg.TotalZakat != wantZakat {
		t.Fatalf("expected total zakat %v, got %v", wantZakat, seg.TotalZakat)
	}
}

func TestSegmentEmptyPopulation(t *testing.T) {
	report, err := Segment(nil, segConfig(), segNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalDonors != 0 || report.AtRiskCount != 0 || len(report.Segments) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestSegmentRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SegmentationConfig)
	}{
		{"zero tier cutoff", func(c *SegmentationConfig) { c.TierCutoff = 0 }},
		{"zero nisab", func(c *SegmentationConfig) { c.NisabThreshold = 0 }},
		{"zero overdue", func(c *SegmentationConfig) { c.OverdueDays = 0 }},
		{"high below overdue", func(c *SegmentationConfig) { c.HighRiskDays = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := segConfig()
			tt.mutate(&cfg)
			_, err := Segment(nil, cfg, segNow)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestEmploymentBreakdown(t *testing.T) {
	records := []models.DonorRecord{
		donor("MZ1", 40000, 10),
		donor("MZ2", 80000, 10),
	}
	records[1].EmploymentStatus = models.EmploymentSelfEmployed

	breakdown := EmploymentBreakdown(records)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(breakdown))
	}
	if breakdown[0].EmploymentStatus != models.EmploymentEmployed || breakdown[0].DonorCount != 1 {
		t.Fatalf("unexpected first group %+v", breakdown[0])
	}
	if breakdown[0].AverageZakat != 40000*0.025 {
		t.Fatalf("expected average %v, got %v", 40000*0.025, breakdown[0].AverageZakat)
	}
}
