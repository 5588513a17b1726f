package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(8, 2, red, blue)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, blue, img.RGBAAt(4, 0))
	assert.Equal(t, blue, img.RGBAAt(0, 4))
	assert.Equal(t, red, img.RGBAAt(7, 7))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	src := Checkerboard(4, 2, red, blue)

	pngPath := filepath.Join(dir, "a.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "a.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, src))
	require.NoError(t, f.Close())

	for _, path := range []string{pngPath, bmpPath} {
		img, err := Load(path)
		require.NoError(t, err, path)
		rgba := ToRGBA(img)
		assert.Equal(t, src.Bounds(), rgba.Bounds())
		assert.Equal(t, src.Pix, rgba.Pix, path)
	}

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Load(junk)
	assert.Error(t, err)
}

func TestToRGBA(t *testing.T) {
	rgba := Checkerboard(4, 2, red, blue)
	assert.Same(t, rgba, ToRGBA(rgba))

	sub := rgba.SubImage(image.Rect(2, 0, 4, 2))
	out := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 2), out.Bounds())
	assert.Equal(t, 8, out.Stride)
	assert.Equal(t, blue, out.RGBAAt(0, 0))

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 255})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ToRGBA(gray).RGBAAt(0, 0))
}

func TestText(t *testing.T) {
	img, err := Text("12:00", 24, 2, color.White)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Greater(t, b.Dx(), b.Dy())

	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked++
		}
	}
	assert.Greater(t, inked, 0)
	// padding stays transparent
	for x := 0; x < b.Dx(); x++ {
		assert.Zero(t, img.RGBAAt(x, 0).A)
	}

	_, err = Text("", 12, 0, color.White)
	assert.Error(t, err)
}
