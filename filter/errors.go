package filter

import "errors"

var (
	// ErrNilImage is returned when a required image argument is nil.
	ErrNilImage = errors.New("blurkit/filter: nil image")

	// ErrSizeMismatch is returned when the destination, source and mask
	// do not share the same dimensions.
	ErrSizeMismatch = errors.New("blurkit/filter: image sizes do not match")
)
