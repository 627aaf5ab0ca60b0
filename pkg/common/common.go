package common

import "math"

const (
	PiDiv180   = math.Pi / 180
	OneHalf    = 1.0 / 2.0  // 0.5
	OneTenth   = 1.0 / 10.0 // 0.1
	TwoThirds  = 2.0 / 3.0  // 0.6666666666666666
	RightAngle = 90.0
	MsToKmh    = 3.6
	SizeFudge  = 1.05 // keeps the stroked arc ends inside the measured size
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
