package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
)

var (
	ErrInvalidSegments = errors.New("geometry: invalid segment count")
	ErrIndexOutOfRange = errors.New("geometry: index out of range")
	ErrIndexCount      = errors.New("geometry: index count does not match topology")
)

// Topology tells how an index list is grouped into primitives.
type Topology int

const (
	Points Topology = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleFan
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line_loop"
	case LineStrip:
		return "line_strip"
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle_fan"
	case TriangleStrip:
		return "triangle_strip"
	}
	return fmt.Sprintf("topology(%d)", int(t))
}

// Variant selects which index pattern a generator emits.
type Variant int

const (
	Solid Variant = iota
	Wireframe
	PointCloud
)

func (v Variant) Topology() Topology {
	switch v {
	case Wireframe:
		return Lines
	case PointCloud:
		return Points
	}
	return Triangles
}

func (v Variant) String() string {
	switch v {
	case Solid:
		return "solid"
	case Wireframe:
		return "wireframe"
	case PointCloud:
		return "points"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	for _, v := range []Variant{Solid, Wireframe, PointCloud} {
		if v.String() == s {
			return v, nil
		}
	}
	return Solid, errors.Errorf("geometry: unknown variant %q", s)
}

// Mesh is the CPU side output of a generator, ready to be uploaded once.
type Mesh struct {
	Vertices   []Vertex
	Indices    []uint32
	Topology   Topology
	Attributes Attributes
}

// Validate checks the index invariants of the mesh.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d at %d, %d vertices", idx, i, n)
		}
	}
	switch m.Topology {
	case Triangles:
		if len(m.Indices)%3 != 0 {
			return errors.Wrapf(ErrIndexCount, "%d indices for %v", len(m.Indices), m.Topology)
		}
	case Lines:
		if len(m.Indices)%2 != 0 {
			return errors.Wrapf(ErrIndexCount, "%d indices for %v", len(m.Indices), m.Topology)
		}
	}
	return nil
}

// PrimitiveCount returns the number of points, lines or triangles drawn.
func (m *Mesh) PrimitiveCount() int {
	n := len(m.Indices)
	switch m.Topology {
	case Lines:
		return n / 2
	case LineStrip:
		return max(n-1, 0)
	case LineLoop:
		if n < 2 {
			return 0
		}
		return n
	case Triangles:
		return n / 3
	case TriangleFan, TriangleStrip:
		return max(n-2, 0)
	}
	return n
}

// SetColor overwrites the color of every vertex.
func (m *Mesh) SetColor(c common.Vec4) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}

// SetRGB tints every vertex and leaves alpha untouched.
func (m *Mesh) SetRGB(r, g, b float32) {
	for i := range m.Vertices {
		m.Vertices[i].Color[0] = r
		m.Vertices[i].Color[1] = g
		m.Vertices[i].Color[2] = b
	}
}

// Translate shifts every position by d. Demos use it as a depth bias
// for edges and points drawn over the solid variant.
func (m *Mesh) Translate(d common.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Add(d)
	}
}

// Transform applies mat to every position and, when present, every normal.
// Normals go through the inverse transpose of the upper 3x3 so they stay
// perpendicular to the surface under non-uniform scales.
func (m *Mesh) Transform(mat common.Mat4) {
	normalMat := mat.Mat3().Inv().Transpose()
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mgl32.TransformCoordinate(v.Position, mat)
		if m.Attributes.Has(AttrNormal) {
			if n := normalMat.Mul3x1(v.Normal); n.Len() > 0 {
				v.Normal = n.Normalize()
			}
		}
	}
}

// Bounds returns the axis aligned bounding box of the positions.
func (m *Mesh) Bounds() (mn, mx common.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	mn, mx = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			mn[k] = min(mn[k], v.Position[k])
			mx[k] = max(mx[k], v.Position[k])
		}
	}
	return mn, mx
}

func (m *Mesh) Layout() Layout {
	return LayoutFor(m.Attributes)
}

// Interleave packs the vertices into one float slice following Layout.
func (m *Mesh) Interleave() []float32 {
	l := m.Layout()
	data := make([]float32, 0, len(m.Vertices)*l.Floats())
	for i := range m.Vertices {
		data = m.Vertices[i].appendFloats(data, m.Attributes)
	}
	return data
}

// Deinterleave rebuilds the vertex list from data packed with attrs.
func Deinterleave(data []float32, attrs Attributes) ([]Vertex, error) {
	floats := LayoutFor(attrs).Floats()
	if len(data)%floats != 0 {
		return nil, errors.Errorf("geometry: %d floats is not a multiple of the %d float stride", len(data), floats)
	}
	vertices := make([]Vertex, len(data)/floats)
	for i := range vertices {
		vertices[i].readFloats(data[i*floats:], attrs)
	}
	return vertices, nil
}

func (m *Mesh) String() string {
	return fmt.Sprintf("mesh{%v vertices=%d indices=%d primitives=%d}",
		m.Topology, len(m.Vertices), len(m.Indices), m.PrimitiveCount())
}
