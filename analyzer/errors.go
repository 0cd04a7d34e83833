package analyzer

import "fmt"

// BoundsError indicates the input buffer's length falls outside
// [romimage.MinSize, romimage.MaxSize] or isn't a multiple of 4.
// Analyze returns this before running any pipeline stage unless
// WithForce(true) is set.
type BoundsError struct {
	Err error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("analyzer: %v", e.Err)
}

func (e *BoundsError) Unwrap() error {
	return e.Err
}
