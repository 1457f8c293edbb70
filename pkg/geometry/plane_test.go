package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

func TestPlane_Hit_BasicIntersection(t *testing.T) {
	// Horizontal plane at y=0, ray shooting down from y=5
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 2)
	ray := core.NewBoundedRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0, 100)

	hit := core.NewHitRecord()
	if !HitPlane(plane, ray, &hit) {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if !hit.Origin.ApproxEqual(core.NewVec3(0, 0, 0), 1e-9) {
		t.Errorf("Expected hit point at origin, got %v", hit.Origin)
	}
	if hit.Normal != core.UnitY || hit.MaterialIndex != 2 {
		t.Errorf("Unexpected normal/material: %v / %d", hit.Normal, hit.MaterialIndex)
	}
}

func TestPlane_Hit_PointLiesOnPlane(t *testing.T) {
	plane := NewPlane(core.NewVec3(1, 2, 3), core.NewVec3(1, 1, -0.5), 0)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(-1, -1, -0.2).Normalized()),
		core.NewRay(core.NewVec3(-4, 0, 2), core.NewVec3(1, 0.3, 0)),
		core.NewRay(core.NewVec3(0, -5, 0), core.NewVec3(0.1, 1, 0.1).Normalized()),
	}

	for i, ray := range rays {
		hit := core.NewHitRecord()
		if !HitPlane(plane, ray, &hit) {
			t.Errorf("ray %d: expected hit", i)
			continue
		}
		if d := hit.Origin.Subtract(plane.Origin).Dot(plane.Normal); math.Abs(d) > 1e-9 {
			t.Errorf("ray %d: hit point is %g off the plane", i, d)
		}
	}
}

func TestPlane_Hit_Misses(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"parallel ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))},
		{"parallel ray in the plane", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))},
		{"plane behind ray", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))},
		{"beyond max", core.NewBoundedRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0, 4)},
		{"exactly at max", core.NewBoundedRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0, 5)},
		{"below min", core.NewBoundedRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 6, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := core.NewHitRecord()
			if HitPlane(plane, tt.ray, &hit) {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
			if HitPlaneAny(plane, tt.ray) {
				t.Error("Expected HitPlaneAny to miss")
			}
			if hit.DidHit {
				t.Error("A miss must not mark the record as hit")
			}
		})
	}
}

func TestPlane_NormalIsNormalized(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 3, 0), 0)
	if plane.Normal != core.UnitY {
		t.Errorf("Expected normalized normal, got %v", plane.Normal)
	}
}
