package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free flying camera. Rotation holds Euler angles in radians
// applied in the same order as Stack.Rotate. An unrotated camera looks down -Z.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

// World places the camera in the scene: T(Position) · R(Rotation).
func (c *Camera) World() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position[0], c.Position[1], c.Position[2]).Mul4(EulerRotation(c.Rotation))
}

// View is the inverse of World, the matrix loaded on the View stack.
func (c *Camera) View() mgl32.Mat4 {
	return c.World().Inv()
}

// Forward returns the unit view direction in world space.
func (c *Camera) Forward() mgl32.Vec3 {
	return mgl32.TransformNormal(mgl32.Vec3{0, 0, -1}, EulerRotation(c.Rotation)).Normalize()
}

// Move advances the camera by distance along its view direction.
func (c *Camera) Move(distance float32) {
	c.Position = c.Position.Add(c.Forward().Mul(distance))
}

// Turn adds delta to the Euler angles.
func (c *Camera) Turn(delta mgl32.Vec3) {
	c.Rotation = c.Rotation.Add(delta)
}

// FlyInput is the steering of one frame. Each axis is in [-1, 1]: Pitch turns
// about X, Yaw about Y and Move goes along the view direction.
type FlyInput struct {
	Pitch, Yaw, Move float32
}

// Fly integrates one frame of input. turnSpeed is in radians per second.
func (c *Camera) Fly(in FlyInput, dt, moveSpeed, turnSpeed float32) {
	c.Turn(mgl32.Vec3{in.Pitch * turnSpeed * dt, in.Yaw * turnSpeed * dt, 0})
	c.Move(in.Move * moveSpeed * dt)
}
