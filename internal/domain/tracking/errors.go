package tracking

import (
	"fmt"

	"github.com/daybudget/daybudget/internal/repository"
)

// Validation sentinels wrap repository.ErrInvalidInput so callers can
// match the whole family with a single errors.Is.
var (
	// ErrUnknownActivity indicates the id is not in today's catalog.
	ErrUnknownActivity = fmt.Errorf("%w: unknown activity", repository.ErrInvalidInput)
	// ErrInvalidMinutes indicates a non-positive manual-entry duration.
	ErrInvalidMinutes = fmt.Errorf("%w: minutes must be a positive integer", repository.ErrInvalidInput)
	// ErrTimerRunning indicates a timer is already active for the activity.
	ErrTimerRunning = fmt.Errorf("%w: timer already running", repository.ErrInvalidInput)
	// ErrInvalidStart indicates a manual start instant in the future.
	ErrInvalidStart = fmt.Errorf("%w: start time must not be in the future", repository.ErrInvalidInput)
)
