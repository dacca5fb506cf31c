package gamemath

import "math"

// Approach moves current toward target by the given fraction of the gap.
func Approach(current, target Vector, drag float64) Vector {
	return current.Add(target.Sub(current).Scale(drag))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Truncate drops the fractional part of both components.
func Truncate(v Vector) Vector {
	return Vector{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
