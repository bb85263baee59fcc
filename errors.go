package clockface

import "errors"

// Sentinel errors returned by clockface constructors and parsers.
var (
	// ErrNilSurface is returned when a Coordinator is created without a surface.
	ErrNilSurface = errors.New("clockface: nil surface")

	// ErrNilScheduler is returned when a Coordinator is created without a
	// frame scheduler.
	ErrNilScheduler = errors.New("clockface: nil scheduler")

	// ErrInvalidColor is returned when a palette color string is not a hex color.
	ErrInvalidColor = errors.New("clockface: invalid color")
)
