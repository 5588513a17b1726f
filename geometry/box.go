package geometry

import (
	"github.com/gorustyt/asr/common"
)

// BoxFace names the six faces of a box in emission order.
type BoxFace int

const (
	FaceFront BoxFace = iota
	FaceRight
	FaceBack
	FaceLeft
	FaceBottom
	FaceTop
)

var boxFaceNames = [...]string{"front", "right", "back", "left", "bottom", "top"}

func (f BoxFace) String() string {
	return boxFaceNames[f]
}

// AtlasRect is the UV quadrant a face samples from the shared cube map image.
type AtlasRect struct {
	U0, V0, U1, V1 float32
}

func (r AtlasRect) Contains(uv common.Vec2, eps float32) bool {
	return uv[0] >= r.U0-eps && uv[0] <= r.U1+eps && uv[1] >= r.V0-eps && uv[1] <= r.V1+eps
}

// BoxAtlas lays the faces out as a horizontal cross:
//
//	      [top]
//	[left][front][right][back]
//	      [bottom]
var BoxAtlas = [6]AtlasRect{
	FaceFront:  {0.25, 1.0 / 3, 0.5, 2.0 / 3},
	FaceRight:  {0.5, 1.0 / 3, 0.75, 2.0 / 3},
	FaceBack:   {0.75, 1.0 / 3, 1, 2.0 / 3},
	FaceLeft:   {0, 1.0 / 3, 0.25, 2.0 / 3},
	FaceBottom: {0.25, 2.0 / 3, 0.5, 1},
	FaceTop:    {0.25, 0, 0.5, 1.0 / 3},
}

// BoxFaceRange is the vertex span a face occupies in a box mesh.
type BoxFaceRange struct {
	Face         BoxFace
	First, Count int
	Cols, Rows   int
	Normal       common.Vec3
}

// BoxFaces returns the vertex span of every face for the given segment counts,
// in emission order.
func BoxFaces(widthSegments, heightSegments, depthSegments int) [6]BoxFaceRange {
	var out [6]BoxFaceRange
	first := 0
	for f := FaceFront; f <= FaceTop; f++ {
		cols, rows := boxFaceGrid(f, widthSegments, heightSegments, depthSegments)
		n := (cols + 1) * (rows + 1)
		out[f] = BoxFaceRange{Face: f, First: first, Count: n, Cols: cols, Rows: rows, Normal: boxNormals[f]}
		first += n
	}
	return out
}

var boxNormals = [6]common.Vec3{
	FaceFront:  {0, 0, 1},
	FaceRight:  {1, 0, 0},
	FaceBack:   {0, 0, -1},
	FaceLeft:   {-1, 0, 0},
	FaceBottom: {0, -1, 0},
	FaceTop:    {0, 1, 0},
}

func boxFaceGrid(f BoxFace, ws, hs, ds int) (cols, rows int) {
	switch f {
	case FaceFront, FaceBack:
		return ws, hs
	case FaceRight, FaceLeft:
		return ds, hs
	}
	return ws, ds
}

// Box builds a width x height x depth cuboid centered on the origin out of
// six independent patches. Faces do not share vertices, each samples its own
// BoxAtlas quadrant and winds counter-clockwise seen from outside.
func Box(width, height, depth float32, widthSegments, heightSegments, depthSegments int, variant Variant, opts ...Option) *Mesh {
	requireSegments("box", "widthSegments", widthSegments, 1)
	requireSegments("box", "heightSegments", heightSegments, 1)
	requireSegments("box", "depthSegments", depthSegments, 1)

	cfg := newConfig(opts)
	m := newMesh(variant, cfg)

	hw, hh, hd := width*0.5, height*0.5, depth*0.5
	// Horizontal and vertical atlas coordinates inside a face's quadrant.
	// s runs along the face columns, t along its rows.
	atlas := func(f BoxFace, s, t float32) common.Vec2 {
		r := BoxAtlas[f]
		return common.Vec2{r.U0 + s*(r.U1-r.U0), r.V0 + t*(r.V1-r.V0)}
	}

	faces := [6]patch{}
	faces[FaceFront] = patch{
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{s*width - hw, t*height - hh, hd}, boxNormals[FaceFront], atlas(FaceFront, s, 1-t)
		},
	}
	faces[FaceRight] = patch{
		flip: true,
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{hw, t*height - hh, s*depth - hd}, boxNormals[FaceRight], atlas(FaceRight, 1-s, 1-t)
		},
	}
	faces[FaceBack] = patch{
		flip: true,
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{s*width - hw, t*height - hh, -hd}, boxNormals[FaceBack], atlas(FaceBack, 1-s, 1-t)
		},
	}
	faces[FaceLeft] = patch{
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{-hw, t*height - hh, s*depth - hd}, boxNormals[FaceLeft], atlas(FaceLeft, s, 1-t)
		},
	}
	faces[FaceBottom] = patch{
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{s*width - hw, -hh, t*depth - hd}, boxNormals[FaceBottom], atlas(FaceBottom, s, 1-t)
		},
	}
	faces[FaceTop] = patch{
		flip: true,
		node: func(s, t float32) (common.Vec3, common.Vec3, common.Vec2) {
			return common.Vec3{s*width - hw, hh, t*depth - hd}, boxNormals[FaceTop], atlas(FaceTop, s, t)
		},
	}

	var nVtx, nIdx int
	for f := range faces {
		faces[f].cols, faces[f].rows = boxFaceGrid(BoxFace(f), widthSegments, heightSegments, depthSegments)
		v, i := gridCounts(faces[f].cols, faces[f].rows, variant)
		nVtx += v
		nIdx += i
	}
	m.Vertices = make([]Vertex, 0, nVtx)
	m.Indices = make([]uint32, 0, nIdx)
	for f := range faces {
		faces[f].emit(m, variant, cfg)
	}
	return m
}
