package util

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorZero returns v, or 0 when v is negative.
func FloorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// SafeRatio divides num by den, returning 0 for a zero denominator.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
