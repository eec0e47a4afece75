package town

import "errors"

var (
	// ErrInvalidArgument reports a split percentage outside (0, 1).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidGeometry reports a malformed or non-positive-area polygon.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDidNotConverge reports that the bisection search exhausted its
	// iteration budget without meeting the area tolerance.
	ErrDidNotConverge = errors.New("bisection did not converge")
)
