package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// expectNotImplemented runs fn and checks it panics with ErrNotImplemented
func expectNotImplemented(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotImplemented) {
			t.Fatalf("Expected ErrNotImplemented panic, got %v", r)
		}
	}()
	fn()
}

func TestTriangle_HitFailsFast(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))
	mesh := NewTriangleMesh([]core.Vec3{tri.V0, tri.V1, tri.V2}, []int{0, 1, 2}, BackFaceCulling)

	t.Run("triangle", func(t *testing.T) {
		hit := core.NewHitRecord()
		expectNotImplemented(t, func() { HitTriangle(tri, ray, &hit) })
	})
	t.Run("triangle any", func(t *testing.T) {
		expectNotImplemented(t, func() { HitTriangleAny(tri, ray) })
	})
	t.Run("mesh", func(t *testing.T) {
		hit := core.NewHitRecord()
		expectNotImplemented(t, func() { HitTriangleMesh(mesh, ray, &hit) })
	})
	t.Run("mesh any", func(t *testing.T) {
		expectNotImplemented(t, func() { HitTriangleMeshAny(mesh, ray) })
	})
}

func TestTriangle_FaceNormal(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	if tri.Normal != core.UnitZ {
		t.Errorf("Expected counter-clockwise XY triangle to face +Z, got %v", tri.Normal)
	}
}

func TestTriangleMesh_CalculateNormals(t *testing.T) {
	positions := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	indices := []int{0, 1, 2, 0, 2, 3}
	mesh := NewTriangleMesh(positions, indices, NoCulling)

	if mesh.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}
	expected := []core.Vec3{core.UnitZ, core.UnitX}
	for i, n := range expected {
		if !mesh.Normals[i].ApproxEqual(n, 1e-12) {
			t.Errorf("Face %d: expected normal %v, got %v", i, n, mesh.Normals[i])
		}
	}
}

func TestTriangleMesh_UpdateTransforms(t *testing.T) {
	mesh := NewTriangleMesh(nil, nil, BackFaceCulling)
	mesh.AppendTriangle(NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)), true)

	mesh.Scale(core.NewVec3(2, 2, 2))
	mesh.RotateY(math.Pi / 2)
	mesh.Translate(core.NewVec3(0, 0, 10))
	mesh.UpdateTransforms()

	tri := mesh.Triangle(0)

	// Scale, then yaw (+X turns toward -Z), then translate
	if !tri.V0.ApproxEqual(core.NewVec3(0, 0, 10), 1e-9) {
		t.Errorf("V0: expected (0,0,10), got %v", tri.V0)
	}
	if !tri.V1.ApproxEqual(core.NewVec3(0, 0, 8), 1e-9) {
		t.Errorf("V1: expected (0,0,8), got %v", tri.V1)
	}
	if !tri.V2.ApproxEqual(core.NewVec3(0, 2, 10), 1e-9) {
		t.Errorf("V2: expected (0,2,10), got %v", tri.V2)
	}
	if !tri.Normal.ApproxEqual(core.UnitX, 1e-9) {
		t.Errorf("Normal: expected +X after yaw, got %v", tri.Normal)
	}
	if tri.CullMode != BackFaceCulling {
		t.Errorf("Expected cull mode to carry over, got %v", tri.CullMode)
	}
}

func TestTriangleMesh_AppendUpdatesTransforms(t *testing.T) {
	mesh := NewTriangleMesh(nil, nil, NoCulling)
	mesh.Translate(core.NewVec3(1, 0, 0))
	mesh.AppendTriangle(NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)), false)

	if len(mesh.TransformedPositions) != 3 || len(mesh.TransformedNormals) != 1 {
		t.Fatalf("Expected transformed data for one triangle, got %d positions / %d normals",
			len(mesh.TransformedPositions), len(mesh.TransformedNormals))
	}
	if !mesh.TransformedPositions[0].ApproxEqual(core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected translated first vertex, got %v", mesh.TransformedPositions[0])
	}
}

func TestCullMode_String(t *testing.T) {
	if FrontFaceCulling.String() != "front" || BackFaceCulling.String() != "back" || NoCulling.String() != "none" {
		t.Error("Unexpected cull mode names")
	}
}
