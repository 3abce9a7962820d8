package canvas

import "errors"

// Errors returned by canvas operations.
var (
	// ErrDrawableNotFound indicates a drawable is not present in the collection.
	ErrDrawableNotFound = errors.New("item not found")

	// ErrNilDrawable indicates a nil drawable was passed where one is required.
	ErrNilDrawable = errors.New("nil drawable")

	// ErrInvalidColor indicates a color string could not be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidSize indicates a non-positive canvas dimension.
	ErrInvalidSize = errors.New("invalid canvas size")
)
