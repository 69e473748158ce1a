package huffpack

import (
	"math"
)

// saturatingAdd returns a+b, clamped to math.MaxUint64 on overflow.
func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
