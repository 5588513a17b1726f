package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec2 = mgl32.Vec2
type Vec3 = mgl32.Vec3
type Vec4 = mgl32.Vec4
type Mat4 = mgl32.Mat4

// AssertTrue panics with the formatted message when value is false.
// It is reserved for caller contract violations that have no recovery path.
func AssertTrue(value bool, format string, args ...any) {
	if !value {
		panic(fmt.Sprintf(format, args...))
	}
}
