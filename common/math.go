package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi        float32 = math.Pi
	TwoPi     float32 = 2 * math.Pi
	HalfPi    float32 = math.Pi / 2
	QuarterPi float32 = math.Pi / 4
)

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sin(a float32) float32 {
	return float32(math.Sin(float64(a)))
}

func Cos(a float32) float32 {
	return float32(math.Cos(float64(a)))
}

// Fraction returns i/n as a float32, the parametric position of grid line i of n segments.
func Fraction[T IT](i, n T) float32 {
	return float32(i) / float32(n)
}

// Approx reports whether a and b are equal within eps.
func Approx(a, b, eps float32) bool {
	return mgl32.FloatEqualThreshold(a, b, eps)
}
