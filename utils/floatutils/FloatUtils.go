// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ArgMax returns the index of the maximum value in values. If several
// entries share the maximum, the lowest such index is returned. ArgMax
// panics if values is empty.
func ArgMax(values []float64) int {
	return floats.MaxIdx(values)
}

// InUnit returns whether value lies in the closed interval [0, 1]
func InUnit(value float64) bool {
	return value >= 0 && value <= 1
}
