package collada

import "fmt"

// Reshape splits a flat token stream into rows of the given width, e.g.
// width 3 for positions or 16 for matrices. Rows share the backing array
// of flat.
func Reshape[T any](flat []T, width int) ([][]T, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: invalid row width %d", ErrMalformedArray, width)
	}
	if len(flat)%width != 0 {
		return nil, fmt.Errorf("%w: %d values do not divide into rows of %d", ErrMalformedArray, len(flat), width)
	}

	rows := make([][]T, len(flat)/width)
	for i := range rows {
		start := i * width
		rows[i] = flat[start : start+width : start+width]
	}
	return rows, nil
}

// Flatten concatenates rows back into a single stream.
func Flatten[T any](rows [][]T) []T {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	flat := make([]T, 0, n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return flat
}
