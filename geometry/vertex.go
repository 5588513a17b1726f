package geometry

import (
	"github.com/gorustyt/asr/common"
)

const Float32Size = 4

// Attributes is the set of optional vertex channels carried by a mesh.
// Position and color are always present.
type Attributes uint8

const (
	AttrNormal Attributes = 1 << iota
	AttrUV
)

func (a Attributes) Has(flag Attributes) bool {
	return a&flag != 0
}

// Vertex is one interleaved vertex record. Normal and UV are only
// meaningful when the owning mesh carries AttrNormal / AttrUV.
type Vertex struct {
	Position common.Vec3
	Normal   common.Vec3
	Color    common.Vec4
	UV       common.Vec2
}

// Shader attribute names, in interleaving order.
const (
	PositionAttribute = "position"
	NormalAttribute   = "normal"
	ColorAttribute    = "color"
	UVAttribute       = "texture_coordinates"
)

type LayoutElement struct {
	Name   string
	Size   int // float components
	Offset int // bytes
}

// Layout describes the byte stride and attribute offsets of an interleaved buffer.
type Layout struct {
	Stride   int
	Elements []LayoutElement
}

// Floats returns the number of float32 values per vertex.
func (l Layout) Floats() int {
	return l.Stride / Float32Size
}

func (l Layout) Element(name string) (LayoutElement, bool) {
	for _, e := range l.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return LayoutElement{}, false
}

// LayoutFor builds the interleaved layout position, [normal], color, [uv].
func LayoutFor(attrs Attributes) Layout {
	var l Layout
	add := func(name string, size int) {
		l.Elements = append(l.Elements, LayoutElement{Name: name, Size: size, Offset: l.Stride})
		l.Stride += size * Float32Size
	}
	add(PositionAttribute, 3)
	if attrs.Has(AttrNormal) {
		add(NormalAttribute, 3)
	}
	add(ColorAttribute, 4)
	if attrs.Has(AttrUV) {
		add(UVAttribute, 2)
	}
	return l
}

// appendFloats writes v into dst following the channel set attrs.
func (v *Vertex) appendFloats(dst []float32, attrs Attributes) []float32 {
	dst = append(dst, v.Position[:]...)
	if attrs.Has(AttrNormal) {
		dst = append(dst, v.Normal[:]...)
	}
	dst = append(dst, v.Color[:]...)
	if attrs.Has(AttrUV) {
		dst = append(dst, v.UV[:]...)
	}
	return dst
}

// readFloats is the inverse of appendFloats. src must hold one full record.
func (v *Vertex) readFloats(src []float32, attrs Attributes) int {
	n := copy(v.Position[:], src)
	if attrs.Has(AttrNormal) {
		n += copy(v.Normal[:], src[n:])
	}
	n += copy(v.Color[:], src[n:])
	if attrs.Has(AttrUV) {
		n += copy(v.UV[:], src[n:])
	}
	return n
}
