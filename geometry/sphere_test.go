package geometry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSphereSolid(t *testing.T) {
	const ws, hs, radius = 8, 6, 1.5
	m := Sphere(radius, ws, hs, Solid, WithNormals())
	assert.Len(t, m.Vertices, (ws+1)*(hs+1))
	assert.Len(t, m.Indices, ws*(2*hs-2)*3)
	assertIndicesInRange(t, m)

	for _, v := range m.Vertices {
		assert.InDelta(t, radius, v.Position.Len(), 1e-5)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5)
		assert.True(t, v.UV[0] >= 0 && v.UV[0] <= 1 && v.UV[1] >= 0 && v.UV[1] <= 1)
	}
	assert.InDelta(t, radius, m.Vertices[0].Position[1], 1e-6)
	assert.InDelta(t, -radius, m.Vertices[len(m.Vertices)-1].Position[1], 1e-6)

	north := uint32(ws + 1)
	south := uint32(hs * (ws + 1))
	for k := 0; k < len(m.Indices); k += 3 {
		var atNorth, atSouth int
		for _, idx := range m.Indices[k : k+3] {
			if idx < north {
				atNorth++
			}
			if idx >= south {
				atSouth++
			}
		}
		assert.LessOrEqual(t, atNorth, 1, "triangle %d collapses at the north pole", k/3)
		assert.LessOrEqual(t, atSouth, 1, "triangle %d collapses at the south pole", k/3)

		a := m.Vertices[m.Indices[k]].Position
		b := m.Vertices[m.Indices[k+1]].Position
		c := m.Vertices[m.Indices[k+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d winds inward", k/3)
	}
}

func TestSphereWireframe(t *testing.T) {
	const ws, hs = 8, 6
	m := Sphere(1, ws, hs, Wireframe)
	assert.Len(t, m.Indices, ws*(2*hs-1)*2)
	assertIndicesInRange(t, m)
	for k := 0; k < len(m.Indices); k += 2 {
		a := m.Vertices[m.Indices[k]].Position
		b := m.Vertices[m.Indices[k+1]].Position
		assert.Greater(t, b.Sub(a).Len(), float32(1e-4), "edge %d has zero length", k/2)
	}
}

func TestSpherePoints(t *testing.T) {
	m := Sphere(1, 3, 2, PointCloud)
	assert.Len(t, m.Indices, 12)
	assert.Equal(t, Points, m.Topology)
}

func TestSphereRejectsFewSegments(t *testing.T) {
	err := recoverError(func() { Sphere(1, 2, 4, Solid) })
	assert.True(t, errors.Is(err, ErrInvalidSegments))
	err = recoverError(func() { Sphere(1, 4, 1, Solid) })
	assert.True(t, errors.Is(err, ErrInvalidSegments))
}
