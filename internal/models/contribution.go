package models

// Contribution is a single recorded Zakat payment. Immutable once recorded.
type Contribution struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"` // Format: YYYY-MM-DD
	Year        int     `json:"year"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// ContributionPoint is one period of the aggregate collection series fed to
// the forecasting service. Ordered by period ascending.
type ContributionPoint struct {
	Period string  `json:"period"` // Format: YYYY-MM-DD (first of month)
	Amount float64 `json:"amount"`
}

// ContributionHistory summarises a donor's payment record.
type ContributionHistory struct {
	History          []Contribution `json:"history"`
	TotalContributed float64        `json:"total_contributed"`
	YearsActive      int            `json:"years_active"`
}
