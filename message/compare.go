package message

import "math"

// totalOrderLess reports whether a sorts strictly before b under spec.md's
// total order: ordinary less-than for non-NaN values, with NaN sorting
// after every non-NaN value (and equal to itself). Every min/argmin in this
// package and in package srmp goes through this comparator instead of plain
// `<`, so a single NaN entry in a factor table can never silently win a
// minimization.
func totalOrderLess(a, b float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return false
	case aNaN:
		return false
	case bNaN:
		return true
	default:
		return a < b
	}
}

// minTotalOrder returns the minimum of values under totalOrderLess. Panics
// on an empty slice, matching the original source's unwrap() on an empty
// iterator — callers here only ever pass non-empty message tensors.
func minTotalOrder(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if totalOrderLess(v, m) {
			m = v
		}
	}
	return m
}

// IndexMin returns the index of the minimum entry of values under the
// NaN-sorts-last total order — exported for package srmp's primal
// extraction over a unary (variable) node's restricted reparametrization.
func IndexMin(values []float64) int { return indexMinTotalOrder(values) }

// Min returns the minimum entry of values under the same total order,
// exported for package srmp's backward-pass lower-bound accounting.
func Min(values []float64) float64 { return minTotalOrder(values) }

// indexMinTotalOrder returns the index of the minimum of values under
// totalOrderLess, the first such index on ties.
func indexMinTotalOrder(values []float64) int {
	idx := 0
	m := values[0]
	for i, v := range values[1:] {
		if totalOrderLess(v, m) {
			m = v
			idx = i + 1
		}
	}
	return idx
}
