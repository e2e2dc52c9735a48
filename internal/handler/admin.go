package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// defaultForecastPeriods is the horizon used when the caller does not specify one.
const defaultForecastPeriods = 12

// GetForecast returns the collection forecast over the aggregate series
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	periods := defaultForecastPeriods
	if raw := r.URL.Query().Get("periods"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "periods must be an integer"})
			return
		}
		periods = n
	}

	forecast, err := h.svc.ForecastCollections(r.Context(), periods)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, forecast)
}

// GetProjection returns the coarse annual projection from stored donor amounts
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	projection, err := h.svc.AnnualProjection()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, projection)
}

// GetSegments runs a segmentation refresh and returns the report
func (h *Handler) GetSegments(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.RefreshSegmentation()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// GetTrends returns income/wealth vs Zakat trend observations
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.Trends()
	if err != nil {
		h.writeError(w, err)
		return
	}
	breakdown, err := h.svc.EmploymentBreakdown()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"trends":                  points,
		"avg_zakat_by_employment": breakdown,
		"status":                  "success",
	})
}

// ExportData streams the anonymized donor data set as CSV
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ExportAnonymized()
	if err != nil {
		h.writeError(w, err)
		return
	}

	filename := fmt.Sprintf("zakat_data_export_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"anonymized_id", "age_group", "income_bucket", "wealth_bucket",
		"total_wealth", "family_size", "employment_status", "tier", "zakat_amount",
	})
	for _, row := range rows {
		_ = cw.Write([]string{
			row.AnonymizedID,
			row.AgeGroup,
			row.IncomeBucket,
			row.WealthBucket,
			strconv.FormatFloat(row.TotalWealth, 'f', 2, 64),
			strconv.Itoa(row.FamilySize),
			strconv.Itoa(row.EmploymentStatus),
			row.Tier,
			strconv.FormatFloat(row.ZakatAmount, 'f', 2, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.log.Errorf("Failed to stream CSV export: %v", err)
	}
}
