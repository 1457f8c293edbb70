package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/geometry"
	"github.com/df07/go-brdf-raytracer/pkg/lights"
	"github.com/df07/go-brdf-raytracer/pkg/material"
)

var (
	ErrInvalidMaterialIndex = errors.New("material index out of range")
	ErrNilMaterial          = errors.New("nil material")
	ErrSceneFinalized       = errors.New("scene is finalized")
)

// Scene owns the primitives, lights, materials and camera of one frame.
// It is built with the Add* methods, sealed by Validate, then only queried.
type Scene struct {
	camera *geometry.Camera

	spheres   []*geometry.Sphere
	planes    []*geometry.Plane
	meshes    []*geometry.TriangleMesh
	lights    []*lights.Light
	materials []material.Material

	finalized bool
}

// NewScene creates an empty scene with a camera at the origin looking down +Z.
// Material index 0 is always a solid red.
func NewScene() *Scene {
	return &Scene{
		camera:    geometry.NewCamera(core.Zero, 90),
		materials: []material.Material{material.NewSolidColor(core.Red)},
	}
}

// PrimitiveKind identifies which primitive list a PrimitiveRef points into
type PrimitiveKind int

const (
	NoPrimitive PrimitiveKind = iota
	SpherePrimitive
	PlanePrimitive
)

func (k PrimitiveKind) String() string {
	switch k {
	case SpherePrimitive:
		return "sphere"
	case PlanePrimitive:
		return "plane"
	default:
		return "none"
	}
}

// PrimitiveRef names one primitive by kind and index into Spheres() or Planes()
type PrimitiveRef struct {
	Kind  PrimitiveKind
	Index int
}

// GetClosestHit returns the nearest sphere or plane hit along the ray.
// Triangle meshes are not tested. On a miss the returned record has DidHit false.
func (s *Scene) GetClosestHit(ray core.Ray) core.HitRecord {
	hit, _ := s.GetClosestHitPrimitive(ray)
	return hit
}

// GetClosestHitPrimitive is GetClosestHit that also reports which primitive won.
// On a miss the reference has Kind NoPrimitive.
func (s *Scene) GetClosestHitPrimitive(ray core.Ray) (core.HitRecord, PrimitiveRef) {
	closest := core.NewHitRecord()
	ref := PrimitiveRef{Kind: NoPrimitive, Index: -1}

	for i, sphere := range s.spheres {
		candidate := core.NewHitRecord()
		if geometry.HitSphere(sphere, ray, &candidate) && candidate.T < closest.T {
			closest = candidate
			ref = PrimitiveRef{Kind: SpherePrimitive, Index: i}
		}
	}

	for i, plane := range s.planes {
		candidate := core.NewHitRecord()
		if geometry.HitPlane(plane, ray, &candidate) && candidate.T < closest.T {
			closest = candidate
			ref = PrimitiveRef{Kind: PlanePrimitive, Index: i}
		}
	}

	return closest, ref
}

// DoesHit reports whether anything blocks the ray inside its bounds
func (s *Scene) DoesHit(ray core.Ray) bool {
	for _, sphere := range s.spheres {
		if geometry.HitSphereAny(sphere, ray) {
			return true
		}
	}

	for _, plane := range s.planes {
		if geometry.HitPlaneAny(plane, ray) {
			return true
		}
	}

	return false
}

// mustNotBeFinalized panics once the scene has been validated for rendering
func (s *Scene) mustNotBeFinalized(op string) {
	if s.finalized {
		panic(fmt.Errorf("%s: %w", op, ErrSceneFinalized))
	}
}

// AddSphere adds a sphere and returns it for further setup
func (s *Scene) AddSphere(origin core.Vec3, radius float64, materialIndex int) *geometry.Sphere {
	s.mustNotBeFinalized("AddSphere")
	sphere := geometry.NewSphere(origin, radius, materialIndex)
	s.spheres = append(s.spheres, sphere)
	return sphere
}

// AddPlane adds an infinite plane and returns it for further setup
func (s *Scene) AddPlane(origin, normal core.Vec3, materialIndex int) *geometry.Plane {
	s.mustNotBeFinalized("AddPlane")
	plane := geometry.NewPlane(origin, normal, materialIndex)
	s.planes = append(s.planes, plane)
	return plane
}

// AddTriangleMesh adds an empty mesh to be filled by the caller
func (s *Scene) AddTriangleMesh(cullMode geometry.CullMode, materialIndex int) *geometry.TriangleMesh {
	s.mustNotBeFinalized("AddTriangleMesh")
	mesh := geometry.NewTriangleMesh(nil, nil, cullMode)
	mesh.MaterialIndex = materialIndex
	s.meshes = append(s.meshes, mesh)
	return mesh
}

// AddPointLight adds a point light and returns it for further setup
func (s *Scene) AddPointLight(origin core.Vec3, intensity float64, color core.Vec3) *lights.Light {
	s.mustNotBeFinalized("AddPointLight")
	light := lights.NewPointLight(origin, intensity, color)
	s.lights = append(s.lights, light)
	return light
}

// AddDirectionalLight adds a directional light. direction points toward the light.
func (s *Scene) AddDirectionalLight(direction core.Vec3, intensity float64, color core.Vec3) *lights.Light {
	s.mustNotBeFinalized("AddDirectionalLight")
	light := lights.NewDirectionalLight(direction, intensity, color)
	s.lights = append(s.lights, light)
	return light
}

// AddMaterial appends a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.mustNotBeFinalized("AddMaterial")
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// Validate checks every material reference and finalizes the scene.
// All problems are reported together; a scene that fails stays editable.
func (s *Scene) Validate() error {
	var errs []error

	for i, m := range s.materials {
		if m == nil {
			errs = append(errs, fmt.Errorf("material %d: %w", i, ErrNilMaterial))
		}
	}

	check := func(kind string, i, materialIndex int) {
		if materialIndex < 0 || materialIndex >= len(s.materials) {
			errs = append(errs, fmt.Errorf("%s %d uses material %d of %d: %w",
				kind, i, materialIndex, len(s.materials), ErrInvalidMaterialIndex))
		}
	}
	for i, sphere := range s.spheres {
		check("sphere", i, sphere.MaterialIndex)
	}
	for i, plane := range s.planes {
		check("plane", i, plane.MaterialIndex)
	}
	for i, mesh := range s.meshes {
		check("mesh", i, mesh.MaterialIndex)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.finalized = true
	return nil
}

// Finalized reports whether Validate has sealed the scene
func (s *Scene) Finalized() bool {
	return s.finalized
}

// Close drops every owned object. The scene must not be used afterwards.
func (s *Scene) Close() {
	s.spheres = nil
	s.planes = nil
	s.meshes = nil
	s.lights = nil
	s.materials = nil
}

// Camera returns the scene camera
func (s *Scene) Camera() *geometry.Camera {
	return s.camera
}

// Material returns the material at index i
func (s *Scene) Material(i int) material.Material {
	return s.materials[i]
}

// Materials returns the material table
func (s *Scene) Materials() []material.Material {
	return s.materials
}

// Lights returns the scene lights
func (s *Scene) Lights() []*lights.Light {
	return s.lights
}

// Spheres returns the scene spheres
func (s *Scene) Spheres() []*geometry.Sphere {
	return s.spheres
}

// Planes returns the scene planes
func (s *Scene) Planes() []*geometry.Plane {
	return s.planes
}

// TriangleMeshes returns the scene meshes
func (s *Scene) TriangleMeshes() []*geometry.TriangleMesh {
	return s.meshes
}

// PrimitiveCount returns the total number of primitives, counting each mesh triangle
func (s *Scene) PrimitiveCount() int {
	count := len(s.spheres) + len(s.planes)
	for _, mesh := range s.meshes {
		count += mesh.TriangleCount()
	}
	return count
}
