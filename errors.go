package amr

import "errors"

// Sentinel errors for the amr package.
// Use errors.Is to check: errors.Is(err, amr.ErrInvalidQuality)
var (
	ErrInvalidQuality = errors.New("amr: quality out of range [0, 5]")
	ErrInvalidConfig  = errors.New("amr: config out of bounds")
	ErrCardIDMismatch = errors.New("amr: card ID mismatch")
)
