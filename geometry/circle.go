package geometry

import (
	"github.com/gorustyt/asr/common"
)

// Circle builds a disc of the given radius in the XY plane: vertex 0 is the
// center, followed by one ring vertex per segment starting at angle 0 and
// turning counter-clockwise. The ring is closed by index, not by repeating
// the first ring vertex.
func Circle(radius float32, segments int, variant Variant, opts ...Option) *Mesh {
	requireSegments("circle", "segments", segments, 3)

	cfg := newConfig(opts)
	m := newMesh(variant, cfg)
	m.Vertices = make([]Vertex, 0, segments+1)

	normal := common.Vec3{0, 0, 1}
	add := func(pos common.Vec3, uv common.Vec2) {
		v := Vertex{Position: pos, Color: cfg.color}
		if cfg.attrs.Has(AttrNormal) {
			v.Normal = normal
		}
		if cfg.attrs.Has(AttrUV) {
			v.UV = uv
		}
		m.Vertices = append(m.Vertices, v)
	}

	add(common.Vec3{}, common.Vec2{0.5, 0.5})
	delta := common.TwoPi / float32(segments)
	for k := 0; k < segments; k++ {
		angle := float32(k) * delta
		cos, sin := common.Cos(angle), common.Sin(angle)
		add(common.Vec3{cos * radius, sin * radius, 0},
			common.Vec2{0.5 + cos*0.5, 1 - (0.5 + sin*0.5)})
	}

	ring := func(k int) uint32 {
		return uint32(1 + k%segments)
	}
	switch variant {
	case Solid:
		m.Indices = make([]uint32, 0, segments*3)
		for k := 0; k < segments; k++ {
			m.triangle(0, ring(k), ring(k+1), false)
		}
	case Wireframe:
		m.Indices = make([]uint32, 0, segments*4)
		for k := 0; k < segments; k++ {
			m.line(0, ring(k))
			m.line(ring(k), ring(k+1))
		}
	case PointCloud:
		m.Indices = make([]uint32, 0, segments+1)
		for k := range m.Vertices {
			m.Indices = append(m.Indices, uint32(k))
		}
	}
	return m
}
