package main

import "fmt"

// InvalidSizeError is returned when a grid dimension is non-positive or
// larger than maxGridSize.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid grid size %d (must be 1-%d)", e.Size, maxGridSize)
}

// InvalidSurfaceError is returned by MapToCell when the displayed surface has
// no extent yet.
type InvalidSurfaceError struct {
	Width  float64
	Height float64
}

func (e *InvalidSurfaceError) Error() string {
	return fmt.Sprintf("invalid display surface %gx%g", e.Width, e.Height)
}

// DecodeError reports bytes that could not be turned into a grid.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not load image: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("could not load image: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError guards direct reads outside the grid. Callers are
// expected to clamp first, so seeing one is a bug.
type OutOfBoundsError struct {
	X, Y int
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Size, e.Size)
}
