package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// ErrNotImplemented is raised (as a panic value) by intersection tests that do not exist yet
var ErrNotImplemented = errors.New("not implemented")

// CullMode selects which triangle faces a hit test ignores
type CullMode int

const (
	FrontFaceCulling CullMode = iota
	BackFaceCulling
	NoCulling
)

func (c CullMode) String() string {
	switch c {
	case FrontFaceCulling:
		return "front"
	case BackFaceCulling:
		return "back"
	case NoCulling:
		return "none"
	default:
		return fmt.Sprintf("CullMode(%d)", int(c))
	}
}

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2    core.Vec3
	Normal        core.Vec3
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle creates a triangle and computes its face normal
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	return Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		Normal: faceNormal(v0, v1, v2),
	}
}

// faceNormal is the normalized cross of the two edges leaving v0
func faceNormal(v0, v1, v2 core.Vec3) core.Vec3 {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalized()
}

// TriangleMesh is an indexed triangle list with its own object transform.
// Transformed positions and normals are derived data refreshed by UpdateTransforms.
type TriangleMesh struct {
	Positions     []core.Vec3
	Normals       []core.Vec3 // One per face
	Indices       []int       // Three per face
	CullMode      CullMode
	MaterialIndex int

	translation core.Matrix
	rotation    core.Matrix
	scale       core.Matrix

	TransformedPositions []core.Vec3
	TransformedNormals   []core.Vec3
}

// NewTriangleMesh creates a mesh from positions and indices and computes face normals
func NewTriangleMesh(positions []core.Vec3, indices []int, cullMode CullMode) *TriangleMesh {
	m := &TriangleMesh{
		Positions:   positions,
		Indices:     indices,
		CullMode:    cullMode,
		translation: core.Identity(),
		rotation:    core.Identity(),
		scale:       core.Identity(),
	}
	m.CalculateNormals()
	m.UpdateTransforms()
	return m
}

// Translate replaces the mesh translation
func (m *TriangleMesh) Translate(t core.Vec3) {
	m.translation = core.CreateTranslation(t)
}

// RotateY replaces the mesh rotation with a yaw of the given radians
func (m *TriangleMesh) RotateY(yaw float64) {
	m.rotation = core.CreateRotationY(yaw)
}

// Scale replaces the mesh scale
func (m *TriangleMesh) Scale(s core.Vec3) {
	m.scale = core.CreateScale(s)
}

// Transform returns the object-to-world matrix: scale, then rotation, then translation
func (m *TriangleMesh) Transform() core.Matrix {
	return m.scale.Mul(m.rotation).Mul(m.translation)
}

// AppendTriangle adds a triangle as three new vertices.
// Pass ignoreTransformUpdate when appending in bulk and call UpdateTransforms once afterwards.
func (m *TriangleMesh) AppendTriangle(tri Triangle, ignoreTransformUpdate bool) {
	start := len(m.Positions)
	m.Positions = append(m.Positions, tri.V0, tri.V1, tri.V2)
	m.Indices = append(m.Indices, start, start+1, start+2)
	m.Normals = append(m.Normals, tri.Normal)

	if !ignoreTransformUpdate {
		m.UpdateTransforms()
	}
}

// CalculateNormals recomputes one normal per face from the object-space positions
func (m *TriangleMesh) CalculateNormals() {
	m.Normals = m.Normals[:0]
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0 := m.Positions[m.Indices[i]]
		v1 := m.Positions[m.Indices[i+1]]
		v2 := m.Positions[m.Indices[i+2]]
		m.Normals = append(m.Normals, faceNormal(v0, v1, v2))
	}
}

// UpdateTransforms recomputes world-space positions and normals
func (m *TriangleMesh) UpdateTransforms() {
	transform := m.Transform()

	m.TransformedPositions = m.TransformedPositions[:0]
	for _, p := range m.Positions {
		m.TransformedPositions = append(m.TransformedPositions, transform.TransformPoint(p))
	}

	m.TransformedNormals = m.TransformedNormals[:0]
	for _, n := range m.Normals {
		m.TransformedNormals = append(m.TransformedNormals, transform.TransformVector(n).Normalized())
	}
}

// TriangleCount returns the number of faces
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns face i in world space
func (m *TriangleMesh) Triangle(i int) Triangle {
	return Triangle{
		V0:            m.TransformedPositions[m.Indices[3*i]],
		V1:            m.TransformedPositions[m.Indices[3*i+1]],
		V2:            m.TransformedPositions[m.Indices[3*i+2]],
		Normal:        m.TransformedNormals[i],
		CullMode:      m.CullMode,
		MaterialIndex: m.MaterialIndex,
	}
}

// HitTriangle is the triangle intersection contract. It is not implemented and
// panics with an error wrapping ErrNotImplemented instead of reporting a miss.
func HitTriangle(tri Triangle, ray core.Ray, hitRecord *core.HitRecord) bool {
	panic(fmt.Errorf("triangle intersection: %w", ErrNotImplemented))
}

// HitTriangleAny is the boolean form of HitTriangle and panics the same way
func HitTriangleAny(tri Triangle, ray core.Ray) bool {
	panic(fmt.Errorf("triangle intersection: %w", ErrNotImplemented))
}

// HitTriangleMesh is the batched mesh intersection contract and panics like HitTriangle
func HitTriangleMesh(mesh *TriangleMesh, ray core.Ray, hitRecord *core.HitRecord) bool {
	panic(fmt.Errorf("triangle mesh intersection: %w", ErrNotImplemented))
}

// HitTriangleMeshAny is the boolean form of HitTriangleMesh and panics the same way
func HitTriangleMeshAny(mesh *TriangleMesh, ray core.Ray) bool {
	panic(fmt.Errorf("triangle mesh intersection: %w", ErrNotImplemented))
}
