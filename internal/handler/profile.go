package handler

import (
	"net/http"

	"github.com/zakatech/zakat-service/internal/middleware"
	"github.com/zakatech/zakat-service/internal/models"
)

// GetProfile returns the caller's financial profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Login required"})
		return
	}

	profile, err := h.svc.GetProfile(userID)
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Profile not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"profile": profile, "status": "success"})
}

// UpdateProfile replaces the caller's financial profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Login required"})
		return
	}

	var profile models.DonorProfile
	if !h.decode(w, r, &profile) {
		return
	}
	if err := h.svc.UpdateProfile(userID, &profile); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated", "status": "success"})
}

// GetContributions returns the caller's contribution history
func (h *Handler) GetContributions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Login required"})
		return
	}

	history, err := h.svc.ContributionHistory(userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"history":           history.History,
		"total_contributed": history.TotalContributed,
		"years_active":      history.YearsActive,
		"status":            "success",
	})
}

// AddContribution records a new payment for the caller
func (h *Handler) AddContribution(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Login required"})
		return
	}

	var c models.Contribution
	if !h.decode(w, r, &c) {
		return
	}
	if err := h.svc.AddContribution(userID, &c); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"message": "Contribution recorded", "status": "success"})
}

// GetNisab returns the current Nisab threshold
func (h *Handler) GetNisab(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.NisabInfo())
}

type nisabCheckRequest struct {
	Savings         float64 `json:"savings"`
	GoldValue       float64 `json:"gold_value"`
	InvestmentValue float64 `json:"investment_value"`
}

// CheckNisab evaluates wealth components against the Nisab threshold
func (h *Handler) CheckNisab(w http.ResponseWriter, r *http.Request) {
	var req nisabCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	verdict, err := h.svc.CheckNisab(req.Savings, req.GoldValue, req.InvestmentValue)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"total_wealth":    verdict.TotalWealth,
		"nisab_threshold": verdict.NisabThreshold,
		"is_eligible":     verdict.IsEligible,
		"status":          "success",
	})
}

type haulStatusRequest struct {
	HaulStartDate string `json:"haul_start_date"`
}

// HaulStatus reports the holding-period state for a start date
func (h *Handler) HaulStatus(w http.ResponseWriter, r *http.Request) {
	var req haulStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.HaulStartDate == "" {
		h.writeJSON(w, http.StatusOK, map[string]any{
			"has_haul": false,
			"message":  "Haul start date not set.",
		})
		return
	}

	status, err := h.svc.HaulStatus(req.HaulStartDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"has_haul": true,
		"haul":     status,
		"status":   "success",
	})
}

// PredictZakat estimates the caller's Zakat liability
func (h *Handler) PredictZakat(w http.ResponseWriter, r *http.Request) {
	var profile models.DonorProfile
	if !h.decode(w, r, &profile) {
		return
	}

	result, recommendations, err := h.svc.PredictZakat(r.Context(), &profile)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"prediction":      result,
		"recommendations": recommendations,
		"status":          "success",
	})
}
