package renderer

import (
	"math"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/geometry"
)

// PrimaryRays generates one camera ray per pixel center for a fixed camera pose
type PrimaryRays struct {
	cameraToWorld core.Matrix
	origin        core.Vec3
	fov           float64 // tan(fov/2)
	aspectRatio   float64
	width         float64
	height        float64
}

// NewPrimaryRays snapshots the camera basis for a width x height frame
func NewPrimaryRays(camera *geometry.Camera, width, height int) *PrimaryRays {
	return &PrimaryRays{
		cameraToWorld: camera.CalculateCameraToWorld(),
		origin:        camera.Origin,
		fov:           math.Tan(core.DegreesToRadians(camera.FovAngle) / 2),
		aspectRatio:   float64(width) / float64(height),
		width:         float64(width),
		height:        float64(height),
	}
}

// GetRay returns the normalized ray through the center of pixel (px, py),
// with py counted from the top row
func (p *PrimaryRays) GetRay(px, py int) core.Ray {
	xNdc := (2*(float64(px)+0.5)/p.width - 1) * p.aspectRatio * p.fov
	yNdc := (1 - 2*(float64(py)+0.5)/p.height) * p.fov

	direction := p.cameraToWorld.TransformVector(core.NewVec3(xNdc, yNdc, 1)).Normalized()
	return core.NewRay(p.origin, direction)
}
