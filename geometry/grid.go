package geometry

import (
	"github.com/gorustyt/asr/common"
)

// nodeFunc maps the parametric grid position (s, t), both in [0, 1], to a vertex.
type nodeFunc func(s, t float32) (pos, normal common.Vec3, uv common.Vec2)

// patch is a rows x cols grid of cells sharing one vertex block. Every shape
// except the circle is built from patches; the variant only changes the
// index pattern.
//
// Node (i, j) lives at row i, column j. For the cell at (i, j):
//
//	c --- d      a = i*(cols+1) + j, b = a + 1
//	|   / |      c = a + (cols+1),   d = c + 1
//	| /   |
//	a --- b      triangles a,b,c and b,d,c
type patch struct {
	cols, rows int
	node       nodeFunc
	// flip reverses the winding of both cell triangles.
	flip bool
	// poles collapses row 0 and the last row to single points, as on a
	// sphere: triangles and edges that would have zero area or length are
	// not emitted, and the seam column is not closed twice.
	poles bool
}

func newMesh(variant Variant, cfg *config) *Mesh {
	return &Mesh{Topology: variant.Topology(), Attributes: cfg.attrs}
}

// emit appends the patch vertices and the variant index pattern to m.
func (p *patch) emit(m *Mesh, variant Variant, cfg *config) {
	base := uint32(len(m.Vertices))
	for i := 0; i <= p.rows; i++ {
		t := common.Fraction(i, p.rows)
		for j := 0; j <= p.cols; j++ {
			pos, normal, uv := p.node(common.Fraction(j, p.cols), t)
			v := Vertex{Position: pos, Color: cfg.color}
			if cfg.attrs.Has(AttrNormal) {
				v.Normal = normal
			}
			if cfg.attrs.Has(AttrUV) {
				v.UV = uv
			}
			m.Vertices = append(m.Vertices, v)
		}
	}

	if variant == PointCloud {
		for k := base; k < uint32(len(m.Vertices)); k++ {
			m.Indices = append(m.Indices, k)
		}
		return
	}

	stride := uint32(p.cols + 1)
	for i := 0; i < p.rows; i++ {
		first, last := i == 0, i == p.rows-1
		for j := 0; j < p.cols; j++ {
			a := base + uint32(i)*stride + uint32(j)
			b := a + 1
			c := a + stride
			d := c + 1
			switch variant {
			case Solid:
				if !(p.poles && first) {
					m.triangle(a, b, c, p.flip)
				}
				if !(p.poles && last) {
					m.triangle(b, d, c, p.flip)
				}
			case Wireframe:
				if !(p.poles && first) {
					m.line(a, b)
				}
				m.line(a, c)
				if p.poles {
					continue
				}
				if j == p.cols-1 {
					m.line(b, d)
				}
				if last {
					m.line(c, d)
				}
			}
		}
	}
}

func (m *Mesh) triangle(a, b, c uint32, flip bool) {
	if flip {
		b, c = c, b
	}
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) line(a, b uint32) {
	m.Indices = append(m.Indices, a, b)
}

// gridCounts returns the vertex and index counts of one patch for a variant,
// ignoring pole collapsing.
func gridCounts(cols, rows int, variant Variant) (nVtx, nIdx int) {
	nVtx = (cols + 1) * (rows + 1)
	switch variant {
	case Solid:
		nIdx = cols * rows * 6
	case Wireframe:
		nIdx = (cols*(rows+1) + rows*(cols+1)) * 2
	case PointCloud:
		nIdx = nVtx
	}
	return
}
