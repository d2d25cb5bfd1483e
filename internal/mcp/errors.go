package mcp

import (
	"errors"
	"fmt"

	"github.com/daybudget/daybudget/internal/domain/tracking"
	"github.com/daybudget/daybudget/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to MCP error codes. Unmapped errors pass
// through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, tracking.ErrUnknownActivity):
		return &APIError{Code: "UNKNOWN_ACTIVITY", Message: "activity not in today's catalog", RecoveryHint: "Call get_today for valid ids"}
	case errors.Is(err, tracking.ErrInvalidMinutes):
		return &APIError{Code: "INVALID_MINUTES", Message: "minutes must be a positive integer"}
	case errors.Is(err, tracking.ErrTimerRunning):
		return &APIError{Code: "TIMER_RUNNING", Message: "a timer is already active for this activity", RecoveryHint: "Stop it first"}
	case errors.Is(err, tracking.ErrInvalidStart):
		return &APIError{Code: "INVALID_START", Message: "start time must not be in the future"}
	case errors.Is(err, repository.ErrStorageUnavailable):
		return &APIError{Code: "STORAGE_UNAVAILABLE", Message: "log store unavailable", RecoveryHint: "Retry the action"}
	default:
		return err
	}
}
