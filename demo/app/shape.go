package app

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/geometry"
)

// Shape is one generated shape uploaded in its three variants. Edges and
// Points are nil when the configuration hides them.
type Shape struct {
	Solid, Edges, Points *asr.Geometry
}

// Bias moves an overlay mesh towards the viewer so it wins the depth test
// against the solid variant. level is 1 for edges and 2 for points.
type Bias func(m *geometry.Mesh, level int)

// DepthBias shifts flat shapes along -Z.
func DepthBias(step float32) Bias {
	return func(m *geometry.Mesh, level int) {
		m.Translate(mgl32.Vec3{0, 0, -step * float32(level)})
	}
}

// ScaleBias inflates closed shapes about the origin.
func ScaleBias(step float32) Bias {
	return func(m *geometry.Mesh, level int) {
		k := 1 + step*float32(level)
		m.Transform(mgl32.Scale3D(k, k, k))
	}
}

// EdgeColor and PointColor tint the overlays.
var (
	EdgeColor  = mgl32.Vec3{1, 0.7, 0.7}
	PointColor = mgl32.Vec3{1, 0, 0}
)

// Shape builds and uploads the variants of one generator.
func (a *App) Shape(build func(v geometry.Variant) *geometry.Mesh, bias Bias) (*Shape, error) {
	s := &Shape{}
	var err error
	if s.Solid, err = a.Upload(build(geometry.Solid)); err != nil {
		return nil, err
	}
	if a.Config.Render.ShowEdges {
		m := build(geometry.Wireframe)
		m.SetRGB(EdgeColor[0], EdgeColor[1], EdgeColor[2])
		bias(m, 1)
		if s.Edges, err = a.Upload(m); err != nil {
			return nil, err
		}
	}
	if a.Config.Render.ShowPoints {
		m := build(geometry.PointCloud)
		m.SetRGB(PointColor[0], PointColor[1], PointColor[2])
		bias(m, 2)
		if s.Points, err = a.Upload(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Draw renders the solid variant with tex and the overlays untextured.
func (s *Shape) Draw(c *asr.Context, tex *asr.Texture) {
	c.Draw(s.Solid, tex)
	if s.Edges != nil {
		c.Draw(s.Edges, nil)
	}
	if s.Points != nil {
		c.Draw(s.Points, nil)
	}
}
