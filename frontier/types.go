// Package frontier defines sentinel errors for active-set maintenance.
package frontier

import "errors"

// Sentinel errors for frontier operations.
var (
	// ErrCapacity is returned when a requested logical size exceeds the
	// frontier's allocated capacity.
	ErrCapacity = errors.New("frontier: length exceeds capacity")

	// ErrNegativeLen is returned when a negative logical size is requested.
	ErrNegativeLen = errors.New("frontier: negative length")
)
