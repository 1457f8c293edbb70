package material

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// Material computes the BRDF response at a hit point.
// Implementations are immutable once built and safe to share between primitives.
type Material interface {
	// Shade returns the reflected color for light arriving along l and leaving along v.
	// l points from the hit toward the light and v from the hit toward the viewer.
	// Shade is total: degenerate directions are clamped, never reported.
	Shade(hit core.HitRecord, l, v core.Vec3) core.Vec3
}
