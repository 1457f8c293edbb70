package geometry

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Origin        core.Vec3 // A point on the plane
	Normal        core.Vec3 // Unit normal vector
	MaterialIndex int
}

// NewPlane creates a new plane
func NewPlane(origin, normal core.Vec3, materialIndex int) *Plane {
	return &Plane{
		Origin:        origin,
		Normal:        normal.Normalized(),
		MaterialIndex: materialIndex,
	}
}

// planeT returns the ray parameter of the plane crossing.
// A ray parallel to the plane divides by zero and yields ±Inf or NaN,
// both of which fail the range check, so no separate guard is needed.
func planeT(p *Plane, ray core.Ray) float64 {
	return p.Origin.Subtract(ray.Origin).Dot(p.Normal) / ray.Direction.Dot(p.Normal)
}

// HitPlane tests the ray against the plane and fills hitRecord on a hit
func HitPlane(p *Plane, ray core.Ray, hitRecord *core.HitRecord) bool {
	t := planeT(p, ray)
	if !ray.InRange(t) {
		return false
	}

	hitRecord.DidHit = true
	hitRecord.T = t
	hitRecord.Origin = ray.At(t)
	hitRecord.Normal = p.Normal
	hitRecord.MaterialIndex = p.MaterialIndex
	return true
}

// HitPlaneAny reports whether the ray hits the plane without computing hit attributes
func HitPlaneAny(p *Plane, ray core.Ray) bool {
	return ray.InRange(planeT(p, ray))
}
