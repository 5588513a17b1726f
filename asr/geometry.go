package asr

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gorustyt/asr/geometry"
	"github.com/pkg/errors"
)

// Geometry is a mesh uploaded to one vertex array with its vertex and index
// buffers.
type Geometry struct {
	vao, vbo, ibo uint32
	mode          uint32
	count         int32
	topology      geometry.Topology
	primitives    int
}

var glModes = map[geometry.Topology]uint32{
	geometry.Points:        gl.POINTS,
	geometry.Lines:         gl.LINES,
	geometry.LineLoop:      gl.LINE_LOOP,
	geometry.LineStrip:     gl.LINE_STRIP,
	geometry.Triangles:     gl.TRIANGLES,
	geometry.TriangleFan:   gl.TRIANGLE_FAN,
	geometry.TriangleStrip: gl.TRIANGLE_STRIP,
}

// UploadMesh validates m and uploads it as static buffers. Vertex attributes
// are bound to the locations mat resolved; channels the program does not use
// are skipped.
func UploadMesh(m *geometry.Mesh, mat *Material) (*Geometry, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "upload mesh")
	}
	mode, ok := glModes[m.Topology]
	if !ok {
		return nil, errors.Errorf("upload mesh: unsupported topology %v", m.Topology)
	}
	if len(m.Indices) == 0 {
		return nil, errors.New("upload mesh: no indices")
	}

	g := &Geometry{
		mode:       mode,
		count:      int32(len(m.Indices)),
		topology:   m.Topology,
		primitives: m.PrimitiveCount(),
	}
	data := m.Interleave()
	layout := m.Layout()

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*geometry.Float32Size, gl.Ptr(data), gl.STATIC_DRAW)

	for _, e := range layout.Elements {
		loc := mat.AttributeLocation(e.Name)
		if loc == -1 {
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(e.Size), gl.FLOAT, false, int32(layout.Stride), uintptr(e.Offset))
	}

	gl.GenBuffers(1, &g.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return g, nil
}

func (g *Geometry) Topology() geometry.Topology {
	return g.topology
}

// Primitives is the number of points, lines or triangles one draw emits.
func (g *Geometry) Primitives() int {
	return g.primitives
}

func (g *Geometry) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(g.mode, g.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (g *Geometry) Delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ibo)
	g.vao, g.vbo, g.ibo = 0, 0, 0
}
