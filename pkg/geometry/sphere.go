package geometry

import (
	"math"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Origin        core.Vec3
	Radius        float64
	MaterialIndex int
}

// NewSphere creates a new sphere
func NewSphere(origin core.Vec3, radius float64, materialIndex int) *Sphere {
	return &Sphere{
		Origin:        origin,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// sphereRoot solves the ray/sphere quadratic and picks the root to report.
// Tangent rays (zero discriminant) count as misses.
func sphereRoot(s *Sphere, ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearer root first, the farther one when the ray starts inside or past it
	root := (-b - sqrtD) / (2 * a)
	if root <= ray.Min {
		root = (-b + sqrtD) / (2 * a)
	}
	if !ray.InRange(root) {
		return 0, false
	}
	return root, true
}

// HitSphere tests the ray against the sphere and fills hitRecord on a hit.
// On a miss the record is left untouched.
func HitSphere(s *Sphere, ray core.Ray, hitRecord *core.HitRecord) bool {
	t, ok := sphereRoot(s, ray)
	if !ok {
		return false
	}

	hitRecord.DidHit = true
	hitRecord.T = t
	hitRecord.Origin = ray.At(t)
	hitRecord.Normal = hitRecord.Origin.Subtract(s.Origin).Normalized()
	hitRecord.MaterialIndex = s.MaterialIndex
	return true
}

// HitSphereAny reports whether the ray hits the sphere without computing hit attributes
func HitSphereAny(s *Sphere, ray core.Ray) bool {
	_, ok := sphereRoot(s, ray)
	return ok
}
