package main

import (
	"sort"

	"github.com/gorustyt/asr/geometry"
	"github.com/pkg/errors"
)

type params struct {
	size     float32
	segments int
	normals  bool
}

type generator func(p params, v geometry.Variant, opts ...geometry.Option) *geometry.Mesh

var generators = map[string]generator{
	"triangle": func(p params, v geometry.Variant, opts ...geometry.Option) *geometry.Mesh {
		return geometry.Triangle(p.size, v, opts...)
	},
	"rectangle": func(p params, v geometry.Variant, opts ...geometry.Option) *geometry.Mesh {
		return geometry.Rectangle(p.size, p.size, p.segments, p.segments, v, opts...)
	},
	"circle": func(p params, v geometry.Variant, opts ...geometry.Option) *geometry.Mesh {
		return geometry.Circle(p.size*0.5, max(p.segments, 3), v, opts...)
	},
	"box": func(p params, v geometry.Variant, opts ...geometry.Option) *geometry.Mesh {
		return geometry.Box(p.size, p.size, p.size, p.segments, p.segments, p.segments, v, opts...)
	},
	"sphere": func(p params, v geometry.Variant, opts ...geometry.Option) *geometry.Mesh {
		return geometry.Sphere(p.size*0.5, max(p.segments, 3), max(p.segments, 2), v, opts...)
	},
}

func shapeNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// generate builds the named shape. Invalid segment counts come back as an
// error rather than a panic, any other panic propagates.
func generate(shape string, variant geometry.Variant, p params) (m *geometry.Mesh, err error) {
	gen, ok := generators[shape]
	if !ok {
		return nil, errors.Errorf("unknown shape %q, want one of %v", shape, shapeNames())
	}
	var opts []geometry.Option
	if p.normals {
		opts = append(opts, geometry.WithNormals())
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, geometry.ErrInvalidSegments) {
				panic(r)
			}
			m, err = nil, e
		}
	}()
	return gen(p, variant, opts...), nil
}
