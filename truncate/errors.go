package truncate

import "errors"

// Sentinel errors for truncation.
var (
	// ErrInvalidBudget is returned when the segment budget is not positive.
	ErrInvalidBudget = errors.New("segment budget must be positive")

	// ErrSuffixTooLong is returned when the suffix alone exceeds the budget.
	ErrSuffixTooLong = errors.New("suffix does not fit in segment budget")
)
