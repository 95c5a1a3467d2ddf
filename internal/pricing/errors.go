package pricing

import "errors"

var (
	// ErrInvalidDimensions is returned when a calculator's geometry inputs
	// are non-positive or exceed the material's working width.
	ErrInvalidDimensions = errors.New("pricing: invalid dimensions")

	// ErrUnknownPreset is returned for a preset key outside the price tables.
	ErrUnknownPreset = errors.New("pricing: unknown preset")
)
