package mines

import "fmt"

// InvalidConfigurationError is fatal to session construction or to a
// degenerate generation request. It is never silently defaulted.
type InvalidConfigurationError struct {
	Reason string
}

// [InvalidConfigurationError] implements [error]
func (e InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// OutOfBoundsError reports dig/flag coordinates outside the grid. The
// session remains usable and no state has been mutated.
type OutOfBoundsError struct {
	Row, Col int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell %d:%d is out of bounds", e.Row, e.Col)
}
