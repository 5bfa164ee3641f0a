package household

import "errors"

var (
	ErrNoAdults      = errors.New("household must have at least one adult")
	ErrNegativeCount = errors.New("household counts cannot be negative")
)
