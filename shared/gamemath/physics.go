package gamemath

import "math"

// DecayKnockback scales a knockback velocity by friction and snaps it to
// zero once its magnitude falls below snap.
func DecayKnockback(v, friction, snap float64) float64 {
	if v == 0 {
		return 0
	}
	v *= friction
	if math.Abs(v) < snap {
		return 0
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns -1 or 1 for a facing flag.
func Direction(facingRight bool) float64 {
	if facingRight {
		return 1
	}
	return -1
}
