// Command box draws a cube mapped box the fly camera can orbit.
package main

import (
	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/demo/app"
	"github.com/gorustyt/asr/geometry"
)

const segments = 5

type scene struct {
	app     *app.App
	shape   *app.Shape
	texture *asr.Texture
}

func (s *scene) Update(*asr.Context, float32) {
	s.app.LoadCamera()
}

func (s *scene) Draw(c *asr.Context) {
	s.shape.Draw(c, s.texture)
}

func main() {
	app.Main("box", func(a *app.App) (asr.Scene, error) {
		shape, err := a.Shape(func(v geometry.Variant) *geometry.Mesh {
			return geometry.Box(1, 1, 1, segments, segments, segments, v)
		}, app.ScaleBias(a.Config.Render.OverlayBias))
		if err != nil {
			return nil, err
		}
		tex, err := a.Texture(a.Config.Assets.CubeMap)
		if err != nil {
			return nil, err
		}
		a.EnableFlyCamera()
		return &scene{app: a, shape: shape, texture: tex}, nil
	})
}
