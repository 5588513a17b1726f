package geometry

import (
	"fmt"
	"testing"

	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleCounts(t *testing.T) {
	for ws := 1; ws <= 6; ws++ {
		for hs := 1; hs <= 6; hs++ {
			t.Run(fmt.Sprintf("%dx%d", ws, hs), func(t *testing.T) {
				solid := Rectangle(2, 3, ws, hs, Solid)
				assert.Len(t, solid.Vertices, (ws+1)*(hs+1))
				assert.Len(t, solid.Indices, ws*hs*6)
				assertIndicesInRange(t, solid)

				wire := Rectangle(2, 3, ws, hs, Wireframe)
				assert.Len(t, wire.Indices, (2*ws*hs+ws+hs)*2)
				assertIndicesInRange(t, wire)

				points := Rectangle(2, 3, ws, hs, PointCloud)
				assert.Len(t, points.Indices, len(points.Vertices))
				for i, idx := range points.Indices {
					assert.Equal(t, uint32(i), idx)
				}
			})
		}
	}
}

func TestRectangleUnitQuad(t *testing.T) {
	m := Rectangle(1, 1, 1, 1, Solid)
	require.Len(t, m.Vertices, 4)
	want := []common.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {-0.5, 0.5, 0}, {0.5, 0.5, 0}}
	for i, v := range m.Vertices {
		assert.Equal(t, want[i], v.Position)
	}
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2}, m.Indices)
	assert.Equal(t, Triangles, m.Topology)

	assert.Equal(t, common.Vec2{0, 1}, m.Vertices[0].UV)
	assert.Equal(t, common.Vec2{1, 0}, m.Vertices[3].UV)
}

func TestRectangleWinding(t *testing.T) {
	m := Rectangle(1, 2, 3, 4, Solid, WithNormals())
	for k := 0; k < len(m.Indices); k += 3 {
		a := m.Vertices[m.Indices[k]].Position
		b := m.Vertices[m.Indices[k+1]].Position
		c := m.Vertices[m.Indices[k+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n[2], float32(0), "triangle %d faces away from +z", k/3)
	}
	for _, v := range m.Vertices {
		assert.Equal(t, common.Vec3{0, 0, 1}, v.Normal)
	}
}

func TestRectangleWireframeHasNoDiagonals(t *testing.T) {
	m := Rectangle(1, 1, 4, 3, Wireframe)
	seen := map[[2]uint32]bool{}
	for k := 0; k < len(m.Indices); k += 2 {
		a, b := m.Indices[k], m.Indices[k+1]
		pa, pb := m.Vertices[a].Position, m.Vertices[b].Position
		sameRow := common.Approx(pa[1], pb[1], 1e-6)
		sameCol := common.Approx(pa[0], pb[0], 1e-6)
		assert.True(t, sameRow != sameCol, "edge %d-%d is not axis aligned", a, b)

		key := [2]uint32{min(a, b), max(a, b)}
		assert.False(t, seen[key], "edge %d-%d emitted twice", a, b)
		seen[key] = true
	}
}

func TestRectangleRejectsZeroSegments(t *testing.T) {
	err := recoverError(func() { Rectangle(1, 1, 0, 1, Solid) })
	assert.True(t, errors.Is(err, ErrInvalidSegments))
	err = recoverError(func() { Rectangle(1, 1, 1, 0, Wireframe) })
	assert.True(t, errors.Is(err, ErrInvalidSegments))
}
