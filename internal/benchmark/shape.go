package benchmark

import "github.com/mwiater/ortbench/internal/engine"

// ResolveShape fixes every dynamic (negative or symbolic zero) dimension
// to 1 so a concrete input can be allocated.
func ResolveShape(declared engine.Shape) engine.Shape {
	resolved := make(engine.Shape, len(declared))
	for i, d := range declared {
		if d <= 0 {
			d = 1
		}
		resolved[i] = d
	}
	return resolved
}

// NormalSource draws from the standard normal distribution.
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type NormalSource interface {
	NormFloat64() float64
}

// FillNormal overwrites buf with independent standard-normal draws.
func FillNormal(buf []float32, src NormalSource) {
	for i := range buf {
		buf[i] = float32(src.NormFloat64())
	}
}
