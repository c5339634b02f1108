package mathx

import "golang.org/x/exp/constraints"

// Wrap returns v modulo n normalised into [0, n).
// Go's % keeps the sign of the dividend, so negative v needs the extra step.
// n <= 0 yields 0.
func Wrap[T constraints.Signed](v, n T) T {
	if n <= 0 {
		return 0
	}
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// WrapRange wraps v into the closed interval [lo, hi].
func WrapRange[T constraints.Signed](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + Wrap(v-lo, hi-lo+1)
}
