package embedding

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is a vector-space similarity function, one of Cosine/Euclidean/
// Cityblock.
type Func func(a, b []float64) float64

// FuncByName resolves one of the three enumerated similarity function
// names. ok is false for any other name, which callers must treat as a
// hard configuration error.
func FuncByName(name string) (fn Func, ok bool) {
	switch name {
	case "cosine":
		return Cosine, true
	case "euclidean":
		return Euclidean, true
	case "cityblock":
		return Cityblock, true
	default:
		return nil, false
	}
}

// minNorm is the L2 norm at or below which Cosine treats a vector as
// near-zero.
const minNorm = 1e-12

// Cosine returns 1 minus cosine distance, clamped to 0 on the negative
// tail. A near-zero-norm vector (norm at or below minNorm) returns 0
// rather than dividing by near-zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na <= minNorm || nb <= minNorm {
		return 0
	}
	cos := floats.Dot(a, b) / (na * nb)
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}

// Euclidean returns exp(-euclideanDistance(a,b)).
func Euclidean(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	d := floats.Distance(a, b, 2)
	return math.Exp(-d)
}

// Cityblock returns exp(-manhattanDistance(a,b)).
func Cityblock(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	d := floats.Distance(a, b, 1)
	return math.Exp(-d)
}
