package geometry

import (
	"math"
	"testing"

	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleQuad(t *testing.T) {
	m := Circle(0.5, 4, Solid)
	require.Len(t, m.Vertices, 5)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 1}, m.Indices)
	assert.Equal(t, common.Vec3{}, m.Vertices[0].Position)
	assert.Equal(t, common.Vec2{0.5, 0.5}, m.Vertices[0].UV)
}

func TestCircleRing(t *testing.T) {
	const n, radius = 24, 2
	m := Circle(radius, n, Solid)
	require.Len(t, m.Vertices, n+1)
	assertIndicesInRange(t, m)

	delta := 2 * math.Pi / n
	for k := 0; k < n; k++ {
		p := m.Vertices[k+1].Position
		angle := float64(k) * delta
		assert.InDelta(t, radius*math.Cos(angle), p[0], 1e-5)
		assert.InDelta(t, radius*math.Sin(angle), p[1], 1e-5)
		assert.Zero(t, p[2])
		assert.InDelta(t, radius, p.Len(), 1e-5)

		uv := m.Vertices[k+1].UV
		assert.True(t, uv[0] >= 0 && uv[0] <= 1 && uv[1] >= 0 && uv[1] <= 1)
	}

	for k := 0; k < len(m.Indices); k += 3 {
		assert.Equal(t, uint32(0), m.Indices[k])
		a := m.Vertices[m.Indices[k]].Position
		b := m.Vertices[m.Indices[k+1]].Position
		c := m.Vertices[m.Indices[k+2]].Position
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a))[2], float32(0))
	}
}

func TestCircleVariants(t *testing.T) {
	wire := Circle(1, 6, Wireframe)
	assert.Len(t, wire.Indices, 6*4)
	assertIndicesInRange(t, wire)
	// spoke then arc
	assert.Equal(t, []uint32{0, 6, 6, 1}, wire.Indices[20:])

	points := Circle(1, 6, PointCloud)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6}, points.Indices)
	assert.Equal(t, Points, points.Topology)
}

func TestCircleRejectsFewSegments(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		err := recoverError(func() { Circle(1, n, Solid) })
		assert.True(t, errors.Is(err, ErrInvalidSegments), "segments=%d", n)
	}
}
