// Package errdefs defines the error taxonomy shared by the renderer, the
// box-count estimator and the command-line layer.
//
// Packages wrap these sentinels with context, callers match them with
// errors.Is.
package errdefs

import "errors"

var (
	// ErrInvalidInput reports an input that can never produce a result:
	// an empty note sequence, a non-positive canvas or box size, an unknown
	// predicate name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData reports too few distinct box sizes for the
	// regression fit.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateBoxCount reports a box size for which no box is occupied,
	// so its logarithm is undefined.
	ErrDegenerateBoxCount = errors.New("degenerate box count")
)
