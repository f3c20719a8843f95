package scoring

import "math"

const scoreTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= scoreTolerance
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
