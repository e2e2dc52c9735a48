package zakat

import "fmt"

// ValidationError reports malformed or out-of-range input, rejected before any
// computation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigError reports a missing or invalid externally supplied configuration
// value. Configuration is never silently defaulted.
type ConfigError struct {
	Name   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Name, e.Reason)
}

// InvalidDateError reports a future or unparseable date.
type InvalidDateError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %s=%q: %s", e.Field, e.Value, e.Reason)
}

// PredictionUnavailableError reports a prediction service failure. The failure
// is surfaced verbatim, never masked by the statutory amount.
type PredictionUnavailableError struct {
	Err error
}

func (e *PredictionUnavailableError) Error() string {
	return fmt.Sprintf("prediction service unavailable: %v", e.Err)
}

func (e *PredictionUnavailableError) Unwrap() error { return e.Err }

// ForecastServiceError reports a forecasting service failure. The failure is
// surfaced verbatim, never replaced by a naive projection.
type ForecastServiceError struct {
	Err error
}

func (e *ForecastServiceError) Error() string {
	return fmt.Sprintf("forecast service failed: %v", e.Err)
}

func (e *ForecastServiceError) Unwrap() error { return e.Err }

// InsufficientHistoryError reports a historical series too short to forecast.
type InsufficientHistoryError struct {
	Points   int
	Required int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: %d points, need at least %d", e.Points, e.Required)
}

// ExportError reports an incomplete record encountered during export. Partial
// or malformed data is rejected outright rather than silently dropped.
type ExportError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export rejected at row %d: field %s: %s", e.Row, e.Field, e.Reason)
}
