package models

// Recommendation is one piece of actionable advice for a donor, derived from
// their profile and prediction result.
type Recommendation struct {
	Type        string `json:"type"` // strategy, compliance, info, warning, benefit, general
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}
