package zakat

import (
	"sync"
	"time"

	"github.com/zakatech/zakat-service/internal/models"
)

// NisabSource holds the current Nisab threshold. The threshold is refreshed
// periodically by an external scheduler; readers always see a single
// consistent snapshot, so a refresh can never change the threshold
// mid-evaluation.
type NisabSource struct {
	mu        sync.RWMutex
	threshold float64
	updatedAt time.Time
}

// NewNisabSource creates a source with an initial threshold. A zero or
// negative initial value is kept as-is and will fail evaluation until a valid
// refresh arrives.
func NewNisabSource(initial float64) *NisabSource {
	s := &NisabSource{threshold: initial}
	if initial > 0 {
		s.updatedAt = time.Now()
	}
	return s
}

// Set replaces the current threshold.
func (s *NisabSource) Set(threshold float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threshold = threshold
	s.updatedAt = time.Now()
}

// Current returns the threshold snapshot and when it was last refreshed.
func (s *NisabSource) Current() (float64, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threshold, s.updatedAt
}

// Evaluate compares total wealth to the Nisab threshold. Wealth exactly equal
// to the threshold is eligible. An unset or non-positive threshold is a
// configuration error: it must never silently default to zero, since that
// would make every donor eligible.
func Evaluate(totalWealth, threshold float64) (*models.EligibilityVerdict, error) {
	if threshold <= 0 {
		return nil, &ConfigError{Name: "nisab_threshold", Reason: "unset or non-positive"}
	}
	if totalWealth < 0 {
		return nil, &ValidationError{Field: "total_wealth", Reason: "must be non-negative"}
	}
	return &models.EligibilityVerdict{
		TotalWealth:    totalWealth,
		NisabThreshold: threshold,
		IsEligible:     totalWealth >= threshold,
	}, nil
}
