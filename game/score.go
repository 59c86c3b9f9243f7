package game

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CantorPairing computes Cantor's pairing function (x+y)(x+y+1)/2 + y,
// so that CantorPairing(0, 1) = 2.
func CantorPairing(x, y float64) float64 {
	return (x+y)*(x+y+1)/2 + y
}
