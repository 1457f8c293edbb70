package material

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// SolidColor ignores lighting and returns a constant color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color material
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Shade returns the solid color regardless of geometry or light
func (s *SolidColor) Shade(hit core.HitRecord, l, v core.Vec3) core.Vec3 {
	return s.Color
}
