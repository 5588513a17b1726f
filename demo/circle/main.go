// Command circle draws a textured disc with its edges and vertices on top.
package main

import (
	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/demo/app"
	"github.com/gorustyt/asr/geometry"
)

const (
	radius   = 0.5
	segments = 32
	zBias    = 0.01
)

type scene struct {
	shape   *app.Shape
	texture *asr.Texture
}

func (s *scene) Update(*asr.Context, float32) {}

func (s *scene) Draw(c *asr.Context) {
	s.shape.Draw(c, s.texture)
}

func main() {
	app.Main("circle", func(a *app.App) (asr.Scene, error) {
		a.Context.Material().State.DepthTest = false

		shape, err := a.Shape(func(v geometry.Variant) *geometry.Mesh {
			return geometry.Circle(radius, segments, v)
		}, app.DepthBias(zBias))
		if err != nil {
			return nil, err
		}
		tex, err := a.Texture(a.Config.Assets.UVTest)
		if err != nil {
			return nil, err
		}
		return &scene{shape: shape, texture: tex}, nil
	})
}
