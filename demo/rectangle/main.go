// Command rectangle draws a segmented quad labelled with a text texture.
package main

import (
	"image/color"

	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/demo/app"
	"github.com/gorustyt/asr/geometry"
	"github.com/pkg/errors"
)

const (
	segments = 5
	zBias    = 0.01
	label    = "asr"
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
	app.Main("rectangle", func(a *app.App) (asr.Scene, error) {
		a.Context.Material().State.DepthTest = false

		shape, err := a.Shape(func(v geometry.Variant) *geometry.Mesh {
			return geometry.Rectangle(1, 1, segments, segments, v)
		}, app.DepthBias(zBias))
		if err != nil {
			return nil, err
		}
		mode, err := asr.ParseTexturingMode(a.Config.Render.TexturingMode)
		if err != nil {
			return nil, err
		}
		tex, err := asr.TextTexture(label, 96, color.White, asr.WithTexturingMode(mode))
		if err != nil {
			return nil, errors.Wrap(err, "label texture")
		}
		a.Track(tex)
		return &scene{shape: shape, texture: tex}, nil
	})
}
