package geometry

import (
	"github.com/gorustyt/asr/common"
)

// Sphere builds a latitude/longitude sphere. Ring 0 is the north pole (+Y),
// the last ring the south pole. Each ring repeats its first vertex at the
// seam so UVs do not wrap.
func Sphere(radius float32, widthSegments, heightSegments int, variant Variant, opts ...Option) *Mesh {
	requireSegments("sphere", "widthSegments", widthSegments, 3)
	requireSegments("sphere", "heightSegments", heightSegments, 2)

	cfg := newConfig(opts)
	m := newMesh(variant, cfg)
	nVtx, nIdx := gridCounts(widthSegments, heightSegments, variant)
	m.Vertices = make([]Vertex, 0, nVtx)
	m.Indices = make([]uint32, 0, nIdx)

	p := patch{
		cols:  widthSegments,
		rows:  heightSegments,
		poles: true,
		node: func(u, v float32) (common.Vec3, common.Vec3, common.Vec2) {
			phi := v * common.Pi
			theta := u * common.TwoPi
			sinPhi := common.Sin(phi)
			dir := common.Vec3{
				sinPhi * common.Cos(theta),
				common.Cos(phi),
				sinPhi * common.Sin(theta),
			}
			return dir.Mul(radius), dir, common.Vec2{1 - u, v}
		},
	}
	p.emit(m, variant, cfg)
	return m
}
