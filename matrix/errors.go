package matrix

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrBadShape indicates a non-positive row or column count.
	ErrBadShape = errors.New("matrix: rows and cols must be positive")

	// ErrOutOfRange indicates an At/Set index outside [0,Rows)x[0,Cols).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
