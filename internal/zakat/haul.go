package zakat

import (
	"fmt"
	"time"

	"github.com/zakatech/zakat-service/internal/models"
)

// LunarYearDays is the length of the Haul holding period. Zakat uses the
// lunar (Hijri) year, not the 365-day solar year.
const LunarYearDays = 354

const dateLayout = "2006-01-02"

// HaulStatus computes the holding-period state for a start date at the given
// reference time. Elapsed days are floored so completion is never signalled
// early, and progress is clamped so rounding never reports more than 100%
// while the period is still pending. The same inputs always yield the same
// output.
func HaulStatus(startDate string, now time.Time) (*models.HaulStatus, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, &InvalidDateError{Field: "haul_start_date", Value: startDate, Reason: "expected YYYY-MM-DD"}
	}
	if start.After(now) {
		return nil, &InvalidDateError{Field: "haul_start_date", Value: startDate, Reason: "must not be in the future"}
	}

	elapsed := int(now.Sub(start).Hours() / 24)
	dueDate := start.AddDate(0, 0, LunarYearDays)

	status := &models.HaulStatus{
		StartDate:    startDate,
		ElapsedDays:  elapsed,
		RequiredDays: LunarYearDays,
		DueDate:      dueDate.Format(dateLayout),
	}

	if elapsed >= LunarYearDays {
		status.IsDue = true
		status.DaysRemaining = 0
		status.ProgressPercent = 100
		status.Message = fmt.Sprintf("Haul complete on %s: Zakat is due.", status.DueDate)
		return status, nil
	}

	status.DaysRemaining = LunarYearDays - elapsed
	status.ProgressPercent = elapsed * 100 / LunarYearDays
	if status.ProgressPercent > 100 {
		status.ProgressPercent = 100
	}
	status.Message = fmt.Sprintf("%d of %d days held; Zakat due on %s.", elapsed, LunarYearDays, status.DueDate)
	return status, nil
}
