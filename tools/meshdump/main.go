// Command meshdump writes generated meshes in the protobuf wire format and
// prints summaries of mesh files.
//
//	meshdump -shape sphere -variant wireframe -segments 16 -o sphere.mesh
//	meshdump -obj model.obj -normals -o model.mesh
//	meshdump -inspect sphere.mesh
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gorustyt/asr/common/message"
	"github.com/gorustyt/asr/config"
	"github.com/gorustyt/asr/geometry"
	"github.com/gorustyt/asr/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	shape    = flag.String("shape", "box", fmt.Sprintf("shape to generate, one of %v", shapeNames()))
	variant  = flag.String("variant", geometry.Solid.String(), "solid, wireframe or points")
	size     = flag.Float64("size", 1, "edge length or diameter")
	segments = flag.Int("segments", 4, "segments per axis")
	normals  = flag.Bool("normals", false, "add the normal channel")
	output   = flag.String("o", "", "output file, stdout summary only when empty")
	inspect  = flag.String("inspect", "", "mesh file to decode and summarise")
	obj      = flag.String("obj", "", "convert a Wavefront OBJ file instead of generating a shape")
	level    = flag.String("log-level", "info", "log level")
)

func main() {
	flag.Parse()

	cfg := config.NewConfig().Log
	cfg.Level = *level
	log := logger.Must(cfg).Named("meshdump")
	defer log.Sync()

	var err error
	if *inspect != "" {
		err = inspectFile(*inspect)
	} else {
		err = dump(log)
	}
	if err != nil {
		log.Fatal("meshdump failed", zap.Error(err))
	}
}

func dump(log *zap.Logger) error {
	m, err := source()
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	fmt.Println(summary(m))
	if *output == "" {
		return nil
	}
	data := message.EncodeMesh(m)
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", *output)
	}
	log.Info("mesh written", zap.String("file", *output), zap.Int("bytes", len(data)), zap.Stringer("mesh", m))
	return nil
}

func source() (*geometry.Mesh, error) {
	if *obj != "" {
		f, err := os.Open(*obj)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", *obj)
		}
		defer f.Close()
		var opts []geometry.Option
		if *normals {
			opts = append(opts, geometry.WithNormals())
		}
		return geometry.LoadOBJ(f, opts...)
	}
	v, err := geometry.ParseVariant(*variant)
	if err != nil {
		return nil, err
	}
	return generate(*shape, v, params{size: float32(*size), segments: *segments, normals: *normals})
}

func inspectFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	m, err := message.DecodeMesh(data)
	if err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	fmt.Println(summary(m))
	return nil
}

func summary(m *geometry.Mesh) string {
	mn, mx := m.Bounds()
	return fmt.Sprintf("%v stride=%dB bounds=%v..%v", m, m.Layout().Stride, mn, mx)
}
