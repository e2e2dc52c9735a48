package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/zakatech/zakat-service/internal/service"
	"github.com/zakatech/zakat-service/internal/zakat"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// writeError maps engine error kinds to HTTP statuses. The typed errors carry
// enough context (field, threshold) to explain the rejection to the caller.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		validationErr *zakat.ValidationError
		dateErr       *zakat.InvalidDateError
		configErr     *zakat.ConfigError
		predictErr    *zakat.PredictionUnavailableError
		forecastErr   *zakat.ForecastServiceError
		historyErr    *zakat.InsufficientHistoryError
		exportErr     *zakat.ExportError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &dateErr):
		status = http.StatusBadRequest
	case errors.As(err, &historyErr), errors.As(err, &exportErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &predictErr):
		status = http.StatusServiceUnavailable
	case errors.As(err, &forecastErr):
		status = http.StatusBadGateway
	case errors.As(err, &configErr):
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		h.log.Errorf("Request failed: %v", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}
