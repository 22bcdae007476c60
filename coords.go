package main

import "math"

// MapToCell converts a position on a displayed surface of width x height
// into grid cell indices. Each axis is clamped to [0, size-1] on its own, so
// positions outside the surface land on the nearest edge cell.
func MapToCell(px, py, width, height float64, size int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return 0, 0, &InvalidSurfaceError{Width: width, Height: height}
	}
	if size <= 0 {
		return 0, 0, &InvalidSizeError{Size: size}
	}
	x := clampCell(math.Floor(px*float64(size)/width), size)
	y := clampCell(math.Floor(py*float64(size)/height), size)
	return x, y, nil
}

func clampCell(v float64, size int) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(size-1) {
		return size - 1
	}
	return int(v)
}
