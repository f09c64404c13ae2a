package collada

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloats parses a whitespace-separated list of numbers.
func ParseFloats(text string) ([]float64, error) {
	fields := strings.Fields(text)
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) is not a number", ErrMalformedArray, i, f)
		}
		values[i] = v
	}
	return values, nil
}

// ParseInts parses a whitespace-separated list of integers.
func ParseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) is not an integer", ErrMalformedArray, i, f)
		}
		values[i] = v
	}
	return values, nil
}

// ParseNames splits a Name_array or IDREF_array body into names.
func ParseNames(text string) []string {
	return strings.Fields(text)
}
