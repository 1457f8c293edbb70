package material

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// LambertPhong adds a white Phong highlight on top of a Lambert base
type LambertPhong struct {
	DiffuseColor        core.Vec3
	DiffuseReflectance  float64 // kd
	SpecularReflectance float64 // ks
	PhongExponent       float64
}

// NewLambertPhong creates a new lambert-phong material
func NewLambertPhong(diffuseColor core.Vec3, kd, ks, phongExponent float64) *LambertPhong {
	return &LambertPhong{
		DiffuseColor:        diffuseColor,
		DiffuseReflectance:  kd,
		SpecularReflectance: ks,
		PhongExponent:       phongExponent,
	}
}

// Shade returns the diffuse term plus the Phong specular term
func (m *LambertPhong) Shade(hit core.HitRecord, l, v core.Vec3) core.Vec3 {
	diffuse := LambertBRDF(m.DiffuseReflectance, m.DiffuseColor)
	specular := Phong(m.SpecularReflectance, m.PhongExponent, l, v, hit.Normal)
	return diffuse.Add(specular)
}
