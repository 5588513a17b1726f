// Command triangle draws a vertex colored triangle spun by the vertex shader.
package main

import (
	"github.com/gorustyt/asr/asr"
	"github.com/gorustyt/asr/demo/app"
	"github.com/gorustyt/asr/geometry"
	"github.com/pkg/errors"
)

const vertexShader = `
#version 410 core

in vec4 position;
in vec4 color;

uniform float time;

out vec4 fragment_color;

void main()
{
    fragment_color = color;

    vec4 rotated_position = position;
    rotated_position.x = position.x * cos(time) - position.y * sin(time);
    rotated_position.y = position.x * sin(time) + position.y * cos(time);

    gl_Position = rotated_position;
}
`

const fragmentShader = `
#version 410 core

in vec4 fragment_color;

out vec4 out_color;

void main()
{
    out_color = fragment_color;
}
`

type scene struct {
	triangle *asr.Geometry
}

func (s *scene) Update(*asr.Context, float32) {}

func (s *scene) Draw(c *asr.Context) {
	c.Draw(s.triangle, nil)
}

func main() {
	app.Main("triangle", func(a *app.App) (asr.Scene, error) {
		mat, err := a.Material(vertexShader, fragmentShader)
		if err != nil {
			return nil, errors.Wrap(err, "triangle material")
		}
		mat.State.CullFaces = false
		mat.State.DepthTest = false
		a.Context.SetMaterial(mat)

		g, err := a.Upload(geometry.Triangle(1, geometry.Solid, geometry.WithoutUV()))
		if err != nil {
			return nil, err
		}
		return &scene{triangle: g}, nil
	})
}
