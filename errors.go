package blurkit

import "errors"

// Sentinel errors returned by the gradient engine. Wrap-aware callers can
// match them with [errors.Is].
var (
	// ErrInvalidLength is returned when a gradient request asks for a strip
	// of zero or negative length.
	ErrInvalidLength = errors.New("blurkit: gradient length must be positive")

	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("blurkit: malformed hex color")
)
