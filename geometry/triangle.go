package geometry

import (
	"github.com/gorustyt/asr/common"
)

// Triangle builds a single triangle of the given size centered on the origin
// with red, green and blue corners. WithColor is ignored.
func Triangle(size float32, variant Variant, opts ...Option) *Mesh {
	cfg := newConfig(opts)
	m := newMesh(variant, cfg)
	h := size * 0.5
	corners := []Vertex{
		{Position: common.Vec3{-h, -h, 0}, Color: common.Vec4{1, 0, 0, 1}, UV: common.Vec2{0, 1}},
		{Position: common.Vec3{h, -h, 0}, Color: common.Vec4{0, 1, 0, 1}, UV: common.Vec2{1, 1}},
		{Position: common.Vec3{0, h, 0}, Color: common.Vec4{0, 0, 1, 1}, UV: common.Vec2{0.5, 0}},
	}
	for _, v := range corners {
		if cfg.attrs.Has(AttrNormal) {
			v.Normal = common.Vec3{0, 0, 1}
		}
		if !cfg.attrs.Has(AttrUV) {
			v.UV = common.Vec2{}
		}
		m.Vertices = append(m.Vertices, v)
	}
	switch variant {
	case Solid:
		m.triangle(0, 1, 2, false)
	case Wireframe:
		m.line(0, 1)
		m.line(1, 2)
		m.line(2, 0)
	case PointCloud:
		m.Indices = append(m.Indices, 0, 1, 2)
	}
	return m
}
