package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
	"github.com/pkg/errors"
)

var ErrStackUnderflow = errors.New("transform: stack underflow")

// Mode selects which of the three matrix stacks the Stack operations act on.
type Mode int

const (
	Projection Mode = iota
	View
	Model
	modeCount
)

func (m Mode) String() string {
	switch m {
	case Projection:
		return "projection"
	case View:
		return "view"
	case Model:
		return "model"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Viewport reports the drawable size in pixels.
type Viewport interface {
	Size() (width, height int)
}

// Stack keeps one matrix stack per Mode and the product
// Projection × View × Model of their tops.
//
// Translate, Rotate and Scale right-multiply the active top, so the transform
// issued last is the first one applied to a vertex:
//
//	s.Translate(p) // 2. move into place
//	s.Scale(k)     // 1. scale about the local origin
type Stack struct {
	viewport Viewport
	mode     Mode
	stacks   [modeCount]*matstack.MatStack

	combined mgl32.Mat4
	dirty    bool
}

func NewStack(viewport Viewport) *Stack {
	s := &Stack{viewport: viewport}
	s.Reset()
	return s
}

// Reset drops every pushed matrix, loads identity everywhere and selects Model.
func (s *Stack) Reset() {
	for i := range s.stacks {
		s.stacks[i] = matstack.NewMatStack()
	}
	s.mode = Model
	s.dirty = true
}

func (s *Stack) SetMode(mode Mode) {
	if mode < 0 || mode >= modeCount {
		panic(fmt.Sprintf("transform: invalid mode %d", int(mode)))
	}
	s.mode = mode
}

func (s *Stack) Mode() Mode {
	return s.mode
}

func (s *Stack) active() *matstack.MatStack {
	return s.stacks[s.mode]
}

func (s *Stack) LoadIdentity() {
	s.active().LoadIdent()
	s.dirty = true
}

// Load replaces the active top with m.
func (s *Stack) Load(m mgl32.Mat4) {
	s.active().Load(m)
	s.dirty = true
}

// Push duplicates the active top.
func (s *Stack) Push() {
	s.active().Push()
}

// Pop restores the matrix saved by the matching Push. The bottom matrix of a
// stack can not be popped.
func (s *Stack) Pop() error {
	if err := s.active().Pop(); err != nil {
		return errors.Wrapf(ErrStackUnderflow, "%v stack", s.mode)
	}
	s.dirty = true
	return nil
}

// Multiply right-multiplies the active top by m.
func (s *Stack) Multiply(m mgl32.Mat4) {
	s.active().RightMul(m)
	s.dirty = true
}

func (s *Stack) Translate(v mgl32.Vec3) {
	s.Multiply(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate applies the Euler angles in radians about X, then Y, then Z.
func (s *Stack) Rotate(angles mgl32.Vec3) {
	s.Multiply(EulerRotation(angles))
}

// RotateAxis rotates by angle radians about axis.
func (s *Stack) RotateAxis(angle float32, axis mgl32.Vec3) {
	s.Multiply(mgl32.HomogRotate3D(angle, axis.Normalize()))
}

func (s *Stack) Scale(v mgl32.Vec3) {
	s.Multiply(mgl32.Scale3D(v[0], v[1], v[2]))
}

// LoadPerspective replaces the active top with a perspective projection.
// The aspect ratio is taken from the viewport.
func (s *Stack) LoadPerspective(fovy, near, far float32) {
	s.Load(mgl32.Perspective(fovy, s.Aspect(), near, far))
}

func (s *Stack) LoadOrthographic(left, right, bottom, top, near, far float32) {
	s.Load(mgl32.Ortho(left, right, bottom, top, near, far))
}

// Aspect returns width / height of the viewport, or 1 when it has no area.
func (s *Stack) Aspect() float32 {
	if s.viewport == nil {
		return 1
	}
	w, h := s.viewport.Size()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Top returns the top of the active stack.
func (s *Stack) Top() mgl32.Mat4 {
	return s.active().Peek()
}

// Current returns the top of the stack of the given mode.
func (s *Stack) Current(mode Mode) mgl32.Mat4 {
	return s.stacks[mode].Peek()
}

func (s *Stack) Depth(mode Mode) int {
	return len(*s.stacks[mode])
}

// Combined returns Projection × View × Model, recomputing it only when a top
// changed since the last call.
func (s *Stack) Combined() mgl32.Mat4 {
	if s.dirty {
		s.combined = s.Current(Projection).Mul4(s.Current(View)).Mul4(s.Current(Model))
		s.dirty = false
	}
	return s.combined
}

// EulerRotation builds the rotation that turns about X first, then Y, then Z.
func EulerRotation(angles mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(angles[2]).
		Mul4(mgl32.HomogRotate3DY(angles[1])).
		Mul4(mgl32.HomogRotate3DX(angles[0]))
}
