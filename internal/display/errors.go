package display

import (
	"errors"
	"fmt"
)

// Domain errors for display operations.
var (
	// ErrOutOfBounds indicates a write outside the current grid.
	ErrOutOfBounds = errors.New("display: coordinates out of bounds")

	// ErrSink indicates the output sink failed during a render.
	ErrSink = errors.New("display: sink failure")

	// ErrDimensionQuery indicates the initial size could not be obtained.
	ErrDimensionQuery = errors.New("display: dimension query failed")
)

// BoundsError describes a rejected Write.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("display: write at (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// SinkError wraps a sink failure with the operation that hit it.
// Buffers are left as they were before the failed render.
type SinkError struct {
	Op      string
	Wrapped error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("display: sink %s: %v", e.Op, e.Wrapped)
}

func (e *SinkError) Unwrap() error {
	return e.Wrapped
}

func (e *SinkError) Is(target error) bool {
	return target == ErrSink
}

// DimensionQueryError wraps a failed DimensionSource query.
type DimensionQueryError struct {
	Wrapped error
}

func (e *DimensionQueryError) Error() string {
	return fmt.Sprintf("display: querying dimensions: %v", e.Wrapped)
}

func (e *DimensionQueryError) Unwrap() error {
	return e.Wrapped
}

func (e *DimensionQueryError) Is(target error) bool {
	return target == ErrDimensionQuery
}
