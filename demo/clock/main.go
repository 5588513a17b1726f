// Command clock draws a spinning analog clock out of rectangles, circles and
// a sphere placed with the transform stack.
package main

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/demo/app"
	"github.com/gorustyt/asr/demo/clock/face"
	"github.com/gorustyt/asr/geometry"
)

const (
	spinSpeed = -0.5
	cameraZ   = 2.5
)

type scene struct {
	app   *app.App
	parts [face.PartCount]*asr.Geometry
	spin  float32
}

func (s *scene) Update(_ *asr.Context, dt float32) {
	s.app.LoadCamera()
	s.spin += spinSpeed * dt
}

func (s *scene) Draw(c *asr.Context) {
	face.Lay(c.Stack, s.spin, time.Now(), func(p face.Part) {
		c.Draw(s.parts[p], nil)
	})
}

func main() {
	app.Main("clock", func(a *app.App) (asr.Scene, error) {
		mat := a.Context.Material()
		mat.State.DepthTest = true
		mat.State.CullFaces = false

		red := geometry.Rectangle(1, 1, 1, 1, geometry.Solid)
		red.SetRGB(1, 0, 0)
		pink := geometry.Rectangle(1, 1, 1, 1, geometry.Solid)
		pink.SetRGB(1, 0.5, 0.5)
		axis := geometry.Sphere(1, 10, 10, geometry.Solid)
		axis.SetRGB(1, 0.3, 0.3)
		meshes := [face.PartCount]*geometry.Mesh{
			face.SecondMark:  geometry.Circle(1, 10, geometry.Solid),
			face.HourMark:    pink,
			face.QuarterMark: red,
			face.HandsAxis:   axis,
			face.HourHand:    red,
			face.MinuteHand:  red,
			face.SecondHand:  red,
		}

		s := &scene{app: a}
		uploaded := map[*geometry.Mesh]*asr.Geometry{}
		for p, m := range meshes {
			g, ok := uploaded[m]
			if !ok {
				var err error
				if g, err = a.Upload(m); err != nil {
					return nil, err
				}
				uploaded[m] = g
			}
			s.parts[p] = g
		}

		a.Camera.Position = mgl32.Vec3{0, 0, cameraZ}
		a.EnableFlyCamera()
		return s, nil
	})
}
