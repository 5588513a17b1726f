package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrig(t *testing.T) {
	assert.InDelta(t, 1, Sin(HalfPi), 1e-6)
	assert.InDelta(t, -1, Cos(Pi), 1e-6)
	assert.InDelta(t, math.Sqrt2/2, Cos(QuarterPi), 1e-6)
	assert.InDelta(t, 0, Sin(TwoPi), 1e-6)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, float32(0), Fraction(0, 4))
	assert.Equal(t, float32(0.25), Fraction(1, 4))
	assert.Equal(t, float32(1), Fraction(uint32(7), uint32(7)))
}

func TestApprox(t *testing.T) {
	assert.True(t, Approx(0.1+0.2, 0.3, 1e-6))
	assert.False(t, Approx(1, 1.01, 1e-6))
}

func TestAssertTrue(t *testing.T) {
	assert.NotPanics(t, func() { AssertTrue(true, "unused") })
	assert.PanicsWithValue(t, "bad count 3", func() { AssertTrue(false, "bad count %d", 3) })
}

func TestIsTexturingMode(t *testing.T) {
	for _, m := range TexturingModes {
		assert.True(t, IsTexturingMode(m), m)
	}
	assert.Equal(t, TexturingModulation, TexturingModes[3])
	assert.False(t, IsTexturingMode("screen"))
	assert.False(t, IsTexturingMode(""))
}
