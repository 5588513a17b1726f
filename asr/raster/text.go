package raster

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

func defaultFont() (*truetype.Font, error) {
	if regular != nil {
		return regular, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse Go Regular")
	}
	regular = f
	return f, nil
}

// Text renders s in Go Regular at size points (72 DPI) onto a transparent
// image just large enough to hold it plus padding pixels on every side.
func Text(s string, size float64, padding int, fg color.Color) (*image.RGBA, error) {
	if s == "" {
		return nil, errors.New("raster: empty text")
	}
	f, err := defaultFont()
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	m := face.Metrics()
	width := font.MeasureString(face, s).Ceil() + 2*padding
	height := (m.Ascent + m.Descent).Ceil() + 2*padding
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(padding, padding+m.Ascent.Ceil()),
	}
	d.DrawString(s)
	return img, nil
}
