package recurrence

import "errors"

// Common recurrence engine errors
var (
	// ErrInvalidDueDay is returned when a due day falls outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidDueMonth is returned when a due month falls outside 1-12.
	ErrInvalidDueMonth = errors.New("due month must be between 1 and 12")

	// ErrMissingDueMonth is returned when an annual or quarterly rule has no
	// due month. Silently defaulting would compute a wrong due date, so the
	// calculator fails fast instead.
	ErrMissingDueMonth = errors.New("due month is required for annual and quarterly frequencies")

	// ErrDuplicateGeneration is returned by the store when saving a generated
	// instance for a (parent, period) pair that already has one. Under
	// concurrent runs both can pass the existence check; the store's
	// uniqueness constraint turns the loser's write into this error, which
	// the engine treats as an ordinary skip.
	ErrDuplicateGeneration = errors.New("instance already generated for period")
)
