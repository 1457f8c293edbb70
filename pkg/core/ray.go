package core

import "math"

// RayEpsilon is the default lower bound on t, keeping rays off the surface they start on
const RayEpsilon = 1e-4

// Ray represents a ray with an origin, a direction and the open interval
// (Min, Max) of t values that count as hits
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Min       float64
	Max       float64
}

// NewRay creates a ray bounded by (RayEpsilon, MaxFloat64)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Min: RayEpsilon, Max: math.MaxFloat64}
}

// NewBoundedRay creates a ray with explicit t bounds
func NewBoundedRay(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, Min: tMin, Max: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InRange reports whether t lies strictly inside the ray's bounds
func (r Ray) InRange(t float64) bool {
	return t > r.Min && t < r.Max
}

// HitRecord contains information about a ray-object intersection.
// It is a transient value: filled by a hit test, read by shading, then dropped.
type HitRecord struct {
	DidHit        bool    // Whether anything was hit
	Origin        Vec3    // Point of intersection
	Normal        Vec3    // Unit surface normal at intersection
	T             float64 // Parameter t along the ray
	MaterialIndex int     // Index into the scene's material table
}

// NewHitRecord returns an empty record whose T is larger than any real hit
func NewHitRecord() HitRecord {
	return HitRecord{T: math.MaxFloat64}
}
