package sanitizer

import "math"

// Numeric represents numeric types that support ordering and arithmetic.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains value to [lo, hi].
func Clamp[T Numeric](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// RoundHalfUp rounds value to the given number of decimal places with ties
// going towards positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
// Negative places are treated as zero.
func RoundHalfUp[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}
	m := math.Pow10(places)
	return T(math.Floor(float64(value)*m+0.5) / m)
}

// Quantize snaps value to the nearest point of the grid origin + k*step.
// A non-positive step returns value unchanged.
func Quantize[T Float](value, origin, step T) T {
	if step <= 0 {
		return value
	}
	k := RoundHalfUp((value-origin)/step, 0)
	return origin + k*step
}

// Percentage calculates what percentage part is of whole, clamped to [0, 100].
// Returns 0 if whole is zero.
func Percentage[T Numeric](part, whole T) float64 {
	if whole == 0 {
		return 0
	}
	return Clamp(float64(part)/float64(whole)*100, 0, 100)
}
