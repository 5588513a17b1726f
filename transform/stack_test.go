package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedViewport struct {
	w, h int
}

func (v fixedViewport) Size() (int, int) {
	return v.w, v.h
}

func assertMat(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want\n%v\ngot\n%v", want, got)
}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v, got %v", want, got)
}

func TestNewStack(t *testing.T) {
	s := NewStack(fixedViewport{640, 480})
	assert.Equal(t, Model, s.Mode())
	for _, mode := range []Mode{Projection, View, Model} {
		assert.Equal(t, 1, s.Depth(mode))
		assert.Equal(t, mgl32.Ident4(), s.Current(mode))
	}
	assert.Equal(t, mgl32.Ident4(), s.Combined())
}

func TestPushPop(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.Translate(mgl32.Vec3{1, 2, 3})
	saved := s.Top()

	s.Push()
	assert.Equal(t, 2, s.Depth(Model))
	assert.Equal(t, saved, s.Top())

	s.Scale(mgl32.Vec3{2, 2, 2})
	s.Rotate(mgl32.Vec3{0.3, 0.2, 0.1})
	assert.NotEqual(t, saved, s.Top())

	require.NoError(t, s.Pop())
	assert.Equal(t, 1, s.Depth(Model))
	assert.Equal(t, saved, s.Top())
	assert.Equal(t, saved, s.Combined())
}

func TestPopUnderflow(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	for _, mode := range []Mode{Projection, View, Model} {
		s.SetMode(mode)
		assert.ErrorIs(t, s.Pop(), ErrStackUnderflow)
		assert.Equal(t, 1, s.Depth(mode))
	}

	s.Push()
	assert.NoError(t, s.Pop())
	assert.ErrorIs(t, s.Pop(), ErrStackUnderflow)
}

func TestModesAreIndependent(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.Push()
	s.Translate(mgl32.Vec3{0, 0, -5})

	s.SetMode(View)
	assert.Equal(t, 1, s.Depth(View))
	assert.Equal(t, mgl32.Ident4(), s.Top())
	s.Scale(mgl32.Vec3{2, 2, 2})

	assert.Equal(t, mgl32.Translate3D(0, 0, -5), s.Current(Model))
	assert.Equal(t, mgl32.Scale3D(2, 2, 2), s.Current(View))
	assert.Equal(t, mgl32.Ident4(), s.Current(Projection))
}

func TestCombined(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.Translate(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), s.Combined())

	s.SetMode(Projection)
	s.LoadPerspective(mgl32.DegToRad(60), 0.1, 100)
	s.SetMode(View)
	s.Load(mgl32.Translate3D(0, 0, -4))

	want := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100).
		Mul4(mgl32.Translate3D(0, 0, -4)).
		Mul4(mgl32.Translate3D(1, 2, 3))
	assertMat(t, want, s.Combined())

	s.SetMode(Model)
	s.LoadIdentity()
	assertMat(t, want.Mul4(mgl32.Translate3D(1, 2, 3).Inv()), s.Combined())
}

func TestLastTransformAppliesFirst(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.Translate(mgl32.Vec3{1, 0, 0})
	s.Scale(mgl32.Vec3{2, 2, 2})
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, s.Combined())
	assertVec(t, mgl32.Vec3{3, 0, 0}, p)
}

func TestRotateOrder(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.Rotate(mgl32.Vec3{mgl32.DegToRad(90), mgl32.DegToRad(90), 0})
	// X turns +Y onto +Z, then Y turns +Z onto +X.
	got := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, s.Top())
	assertVec(t, mgl32.Vec3{1, 0, 0}, got)

	s.LoadIdentity()
	s.RotateAxis(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 2})
	got = mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, s.Top())
	assertVec(t, mgl32.Vec3{0, 1, 0}, got)
}

func TestPerspectiveAspect(t *testing.T) {
	fovy := mgl32.DegToRad(45)
	s := NewStack(fixedViewport{800, 400})
	s.SetMode(Projection)
	s.LoadPerspective(fovy, 0.1, 100)
	assertMat(t, mgl32.Perspective(fovy, 2, 0.1, 100), s.Top())

	empty := NewStack(fixedViewport{0, 0})
	assert.Equal(t, float32(1), empty.Aspect())
	assert.Equal(t, float32(1), NewStack(nil).Aspect())
}

func TestOrthographic(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.SetMode(Projection)
	s.LoadOrthographic(-2, 2, -1, 1, -1, 1)
	p := mgl32.TransformCoordinate(mgl32.Vec3{2, 1, 0}, s.Combined())
	assertVec(t, mgl32.Vec3{1, 1, 0}, p)
}

func TestReset(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	s.SetMode(View)
	s.Push()
	s.Translate(mgl32.Vec3{1, 1, 1})
	s.Reset()
	assert.Equal(t, Model, s.Mode())
	assert.Equal(t, 1, s.Depth(View))
	assert.Equal(t, mgl32.Ident4(), s.Combined())
}

func TestSetModeRejectsUnknown(t *testing.T) {
	s := NewStack(fixedViewport{1, 1})
	assert.Panics(t, func() { s.SetMode(Mode(7)) })
	assert.Equal(t, "view", View.String())
}
