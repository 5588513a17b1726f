package asr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/asr/raster"
	"github.com/gorustyt/asr/common"
	"github.com/pkg/errors"
)

// TexturingMode tells how a texel combines with the interpolated vertex color.
type TexturingMode int32

const (
	Addition TexturingMode = iota
	Subtraction
	ReverseSubtraction
	Modulation
	Decaling
)

var texturingModeNames = map[TexturingMode]string{
	Addition:           common.TexturingAddition,
	Subtraction:        common.TexturingSubtraction,
	ReverseSubtraction: common.TexturingReverseSubtraction,
	Modulation:         common.TexturingModulation,
	Decaling:           common.TexturingDecaling,
}

func (m TexturingMode) String() string {
	if s, ok := texturingModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("texturing_mode(%d)", int32(m))
}

func ParseTexturingMode(s string) (TexturingMode, error) {
	for m, name := range texturingModeNames {
		if name == s {
			return m, nil
		}
	}
	return Modulation, errors.Errorf("unknown texturing mode %q", s)
}

type Texture struct {
	ID            uint32
	Width, Height int
	Mode          TexturingMode
	// Transformation is applied to texture coordinates in the vertex shader.
	Transformation mgl32.Mat4

	repeat  bool
	mipmaps bool
}

type TextureOption func(*Texture)

func WithTexturingMode(m TexturingMode) TextureOption {
	return func(t *Texture) {
		t.Mode = m
	}
}

func WithTransformation(m mgl32.Mat4) TextureOption {
	return func(t *Texture) {
		t.Transformation = m
	}
}

// Repeat wraps texture coordinates outside [0, 1] instead of clamping them.
func Repeat() TextureOption {
	return func(t *Texture) {
		t.repeat = true
	}
}

func NoMipmaps() TextureOption {
	return func(t *Texture) {
		t.mipmaps = false
	}
}

// LoadImage decodes a png, jpeg, gif, bmp or webp file.
func LoadImage(path string) (image.Image, error) {
	return raster.Load(path)
}

// LoadTexture loads path and uploads it.
func LoadTexture(path string, opts ...TextureOption) (*Texture, error) {
	img, err := raster.Load(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(img, opts...)
}

// NewTexture uploads img as an RGBA texture on unit 0.
func NewTexture(img image.Image, opts ...TextureOption) (*Texture, error) {
	rgba := raster.ToRGBA(img)
	size := rgba.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return nil, errors.Errorf("texture of size %v", size)
	}
	t := &Texture{
		Width:          size.X,
		Height:         size.Y,
		Mode:           Modulation,
		Transformation: mgl32.Ident4(),
		mipmaps:        true,
	}
	for _, o := range opts {
		o(t)
	}

	wrap := int32(gl.CLAMP_TO_EDGE)
	if t.repeat {
		wrap = gl.REPEAT
	}
	minFilter := int32(gl.LINEAR)
	if t.mipmaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}

	gl.GenTextures(1, &t.ID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix))
	if t.mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// TextTexture renders text with Go Regular at size points into a texture.
func TextTexture(text string, size float64, fg color.Color, opts ...TextureOption) (*Texture, error) {
	img, err := raster.Text(text, size, int(size/4), fg)
	if err != nil {
		return nil, err
	}
	return NewTexture(img, opts...)
}

func (t *Texture) bind(m *Material) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	m.setInt(TextureEnabledUniform, 1)
	m.setInt(TexturingModeUniform, int32(t.Mode))
	m.setInt(TextureSamplerUniform, 0)
	m.setMat4(TextureTransformationUniform, t.Transformation)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
