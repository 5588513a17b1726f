package geometry

import (
	"github.com/gorustyt/asr/common"
)

// Rectangle builds a width x height grid in the XY plane centered on the origin,
// facing +Z. UV runs 0..1 left to right and 1..0 bottom to top.
func Rectangle(width, height float32, widthSegments, heightSegments int, variant Variant, opts ...Option) *Mesh {
	requireSegments("rectangle", "widthSegments", widthSegments, 1)
	requireSegments("rectangle", "heightSegments", heightSegments, 1)

	cfg := newConfig(opts)
	m := newMesh(variant, cfg)
	nVtx, nIdx := gridCounts(widthSegments, heightSegments, variant)
	m.Vertices = make([]Vertex, 0, nVtx)
	m.Indices = make([]uint32, 0, nIdx)

	halfWidth, halfHeight := width*0.5, height*0.5
	p := patch{
		cols: widthSegments,
		rows: heightSegments,
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{s*width - halfWidth, t*height - halfHeight, 0},
				common.Vec3{0, 0, 1},
				common.Vec2{s, 1 - t}
		},
	}
	p.emit(m, variant, cfg)
	return m
}
