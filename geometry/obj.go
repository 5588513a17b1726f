package geometry

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
)

// maxFaceVertices caps the polygon size read from one "f" row.
const maxFaceVertices = 32

// LoadOBJ reads the "v" and "f" rows of a Wavefront OBJ stream into a solid
// mesh. Polygons are fanned from their first corner, negative indices are
// relative to the last vertex read and faces referencing unknown vertices
// are dropped. With WithNormals every vertex gets the normalised sum of the
// normals of the faces around it. OBJ files carry no color, WithColor applies.
func LoadOBJ(r io.Reader, opts ...Option) (*Mesh, error) {
	cfg := newConfig(opts)
	cfg.attrs &^= AttrUV
	m := newMesh(Solid, cfg)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		row := strings.Fields(sc.Text())
		if len(row) == 0 || strings.HasPrefix(row[0], "#") {
			continue
		}
		var err error
		switch row[0] {
		case "v":
			err = m.objVertex(row[1:], cfg)
		case "f":
			err = m.objFace(row[1:])
		}
		if err != nil {
			return nil, errors.Wrapf(err, "obj line %d", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "obj")
	}
	if cfg.attrs.Has(AttrNormal) {
		m.computeNormals()
	}
	return m, nil
}

func (m *Mesh) objVertex(fields []string, cfg *config) error {
	if len(fields) < 3 {
		return errors.Errorf("vertex with %d coordinates", len(fields))
	}
	var p common.Vec3
	for k := range p {
		f, err := strconv.ParseFloat(fields[k], 32)
		if err != nil {
			return errors.Wrap(err, "vertex")
		}
		p[k] = float32(f)
	}
	m.Vertices = append(m.Vertices, Vertex{Position: p, Color: cfg.color})
	return nil
}

func (m *Mesh) objFace(fields []string) error {
	n := len(m.Vertices)
	corners := make([]int, 0, min(len(fields), maxFaceVertices))
	for _, f := range fields {
		if len(corners) == maxFaceVertices {
			break
		}
		// v, v/vt, v//vn or v/vt/vn: the position index comes first.
		ref, _, _ := strings.Cut(f, "/")
		i, err := strconv.Atoi(ref)
		if err != nil {
			return errors.Wrap(err, "face")
		}
		if i < 0 {
			i += n
		} else {
			i--
		}
		corners = append(corners, i)
	}
	for k := 2; k < len(corners); k++ {
		a, b, c := corners[0], corners[k-1], corners[k]
		if a < 0 || a >= n || b < 0 || b >= n || c < 0 || c >= n {
			continue
		}
		m.Indices = append(m.Indices, uint32(a), uint32(b), uint32(c))
	}
	return nil
}

func (m *Mesh) computeNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = common.Vec3{}
	}
	for k := 0; k+2 < len(m.Indices); k += 3 {
		a, b, c := &m.Vertices[m.Indices[k]], &m.Vertices[m.Indices[k+1]], &m.Vertices[m.Indices[k+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()
		a.Normal = a.Normal.Add(n)
		b.Normal = b.Normal.Add(n)
		c.Normal = c.Normal.Add(n)
	}
	for i := range m.Vertices {
		if m.Vertices[i].Normal.Len() > 0 {
			m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
		}
	}
}
