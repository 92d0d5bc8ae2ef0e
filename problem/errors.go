package problem

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the token stream holds no side length.
	ErrEmptyInput = errors.New("problem: input must start with a side length")
	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("problem: token is not an integer")
	// ErrTrailingTokens indicates the rectangle tokens are not a multiple of four.
	ErrTrailingTokens = errors.New("problem: rectangle tokens must come in groups of four")
	// ErrInvalidSide indicates a side length ≤ 0.
	ErrInvalidSide = errors.New("problem: side length must be positive")
	// ErrRectangleBounds indicates a rectangle outside the grid or with start > end.
	ErrRectangleBounds = errors.New("problem: rectangle out of bounds")
)

// RectangleError reports the offending rectangle and its position.
// It wraps ErrRectangleBounds.
type RectangleError struct {
	Index int
	Rect  Rectangle
	Side  int
}

func (e *RectangleError) Error() string {
	return fmt.Sprintf("problem: rectangle %d %v out of bounds for side %d", e.Index, e.Rect, e.Side)
}

// Unwrap lets errors.Is match ErrRectangleBounds.
func (e *RectangleError) Unwrap() error { return ErrRectangleBounds }
