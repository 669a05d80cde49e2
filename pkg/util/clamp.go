package util

// Clamp limits n to the inclusive range [low, high].
func Clamp(n, low, high int) int {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
