package generator

import (
	"errors"
	"fmt"
	"image"
)

// Each sentinel names the stage a run failed in. Errors returned by this
// package wrap exactly one of them.
var (
	ErrUsage       = errors.New("usage error")
	ErrDecode      = errors.New("decode error")
	ErrOutOfBounds = errors.New("out of bounds")
	ErrIO          = errors.New("io error")
)

// OutOfBoundsError reports a source image that does not cover the canvas.
// X and Y are the first canvas coordinate, in scan order, with no source pixel.
type OutOfBoundsError struct {
	Width, Height int
	Source        image.Rectangle
	X, Y          int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: pixel (%d, %d) is outside the %dx%d source image (canvas is %dx%d)",
		ErrOutOfBounds, e.X, e.Y, e.Source.Dx(), e.Source.Dy(), e.Width, e.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// checkCoverage returns an *OutOfBoundsError if src is smaller than the canvas
// in either dimension.
func checkCoverage(src image.Rectangle, width, height int) error {
	switch {
	case src.Dx() < width:
		return &OutOfBoundsError{Width: width, Height: height, Source: src, X: src.Dx(), Y: 0}
	case src.Dy() < height:
		return &OutOfBoundsError{Width: width, Height: height, Source: src, X: 0, Y: src.Dy()}
	}
	return nil
}
