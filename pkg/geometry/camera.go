package geometry

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// WorldUp is the reference up direction used to build the camera basis
var WorldUp = core.UnitY

// Camera holds the viewer position and orientation.
// The input layer mutates Origin, Forward, TotalPitch and TotalYaw between frames;
// the renderer only reads them.
type Camera struct {
	Origin   core.Vec3
	FovAngle float64 // Full field of view in degrees

	Forward core.Vec3
	Up      core.Vec3
	Right   core.Vec3

	TotalPitch float64 // Radians
	TotalYaw   float64 // Radians
}

// NewCamera creates a camera looking down +Z
func NewCamera(origin core.Vec3, fovAngle float64) *Camera {
	return &Camera{
		Origin:   origin,
		FovAngle: fovAngle,
		Forward:  core.UnitZ,
		Up:       core.UnitY,
		Right:    core.UnitX,
	}
}

// CalculateCameraToWorld rebuilds the orthonormal basis from Forward and packs it
// with Origin into a camera-to-world matrix. It must be called every frame since
// nothing is cached across changes to Origin or Forward.
// A Forward parallel to WorldUp has no defined basis and yields zero axes.
func (c *Camera) CalculateCameraToWorld() core.Matrix {
	c.Right = WorldUp.Cross(c.Forward).Normalized()
	c.Up = c.Forward.Cross(c.Right).Normalized()

	return core.NewMatrix(c.Right, c.Up, c.Forward, c.Origin)
}

// Rotate adds pitch and yaw (radians) to the accumulated totals and re-derives Forward
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.TotalPitch += deltaPitch
	c.TotalYaw += deltaYaw

	rotation := core.CreateRotation(c.TotalPitch, c.TotalYaw, 0)
	c.Forward = rotation.TransformVector(core.UnitZ).Normalized()
}

// Move translates the camera along its current forward and right axes
func (c *Camera) Move(forward, right float64) {
	rightAxis := WorldUp.Cross(c.Forward).Normalized()
	c.Origin = c.Origin.Add(c.Forward.Multiply(forward)).Add(rightAxis.Multiply(right))
}
