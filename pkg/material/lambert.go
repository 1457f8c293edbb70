package material

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// Lambert represents a perfectly diffuse material
type Lambert struct {
	DiffuseColor       core.Vec3 // cd
	DiffuseReflectance float64   // kd
}

// NewLambert creates a new lambert material
func NewLambert(diffuseColor core.Vec3, diffuseReflectance float64) *Lambert {
	return &Lambert{DiffuseColor: diffuseColor, DiffuseReflectance: diffuseReflectance}
}

// Shade returns kd*cd/π. The cosine term is applied by the caller, so the
// result does not depend on l or v.
func (m *Lambert) Shade(hit core.HitRecord, l, v core.Vec3) core.Vec3 {
	return LambertBRDF(m.DiffuseReflectance, m.DiffuseColor)
}
