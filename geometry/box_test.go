package geometry

import (
	"testing"

	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxCounts(t *testing.T) {
	m := Box(1, 1, 1, 2, 3, 4, Solid)
	assert.Len(t, m.Vertices, 94)
	assert.Len(t, m.Indices, 312)
	assertIndicesInRange(t, m)

	m = Box(1, 1, 1, 1, 1, 1, Solid)
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)

	wire := Box(1, 1, 1, 1, 1, 1, Wireframe)
	assert.Len(t, wire.Indices, 6*4*2)
	assertIndicesInRange(t, wire)

	points := Box(1, 2, 3, 3, 2, 1, PointCloud)
	assert.Len(t, points.Indices, len(points.Vertices))
}

func TestBoxFaces(t *testing.T) {
	faces := BoxFaces(2, 3, 4)
	total := 0
	for f, r := range faces {
		assert.Equal(t, BoxFace(f), r.Face)
		assert.Equal(t, total, r.First)
		total += r.Count
	}
	assert.Equal(t, 94, total)
	assert.Equal(t, 4, faces[FaceRight].Cols)
	assert.Equal(t, 3, faces[FaceRight].Rows)
	assert.Equal(t, 4, faces[FaceTop].Rows)
	assert.Equal(t, "bottom", FaceBottom.String())
}

func TestBoxSurface(t *testing.T) {
	const ws, hs, ds = 2, 3, 4
	size := common.Vec3{2, 1, 3}
	m := Box(size[0], size[1], size[2], ws, hs, ds, Solid, WithNormals())
	faces := BoxFaces(ws, hs, ds)

	faceOf := make([]BoxFace, len(m.Vertices))
	for _, r := range faces {
		rect := BoxAtlas[r.Face]
		for i := r.First; i < r.First+r.Count; i++ {
			faceOf[i] = r.Face
			v := m.Vertices[i]
			assert.Equal(t, r.Normal, v.Normal, "%v vertex %d", r.Face, i)
			assert.True(t, rect.Contains(v.UV, 1e-5), "%v uv %v outside %v", r.Face, v.UV, rect)

			// every vertex sits on its face plane
			axis := 0
			for k := range r.Normal {
				if r.Normal[k] != 0 {
					axis = k
				}
			}
			assert.InDelta(t, size[axis]*0.5, v.Position.Dot(r.Normal), 1e-6)
		}
	}

	for k := 0; k < len(m.Indices); k += 3 {
		ia, ib, ic := m.Indices[k], m.Indices[k+1], m.Indices[k+2]
		f := faceOf[ia]
		require.Equal(t, f, faceOf[ib])
		require.Equal(t, f, faceOf[ic])

		a, b, c := m.Vertices[ia].Position, m.Vertices[ib].Position, m.Vertices[ic].Position
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Dot(boxNormals[f]), float32(0), "%v triangle %d winds inward", f, k/3)
	}
}

func TestBoxAtlasCorners(t *testing.T) {
	m := Box(1, 1, 1, 1, 1, 1, Solid)
	faces := BoxFaces(1, 1, 1)
	for _, r := range faces {
		rect := BoxAtlas[r.Face]
		var us, vs []float32
		for i := r.First; i < r.First+r.Count; i++ {
			us = append(us, m.Vertices[i].UV[0])
			vs = append(vs, m.Vertices[i].UV[1])
		}
		// the four corners cover the whole quadrant
		assert.InDelta(t, rect.U0, min(us[0], us[1], us[2], us[3]), 1e-6)
		assert.InDelta(t, rect.U1, max(us[0], us[1], us[2], us[3]), 1e-6)
		assert.InDelta(t, rect.V0, min(vs[0], vs[1], vs[2], vs[3]), 1e-6)
		assert.InDelta(t, rect.V1, max(vs[0], vs[1], vs[2], vs[3]), 1e-6)
	}
}

func TestBoxRejectsZeroSegments(t *testing.T) {
	err := recoverError(func() { Box(1, 1, 1, 1, 1, 0, Solid) })
	assert.True(t, errors.Is(err, ErrInvalidSegments))
}
