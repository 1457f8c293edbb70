package lights

import (
	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// LightType distinguishes the supported light models
type LightType int

const (
	Point LightType = iota
	Directional
)

func (t LightType) String() string {
	switch t {
	case Point:
		return "point"
	case Directional:
		return "directional"
	default:
		return "unknown"
	}
}

// Light is a point or directional light.
// Point lights use Origin; directional lights use Direction, which points
// from the scene toward the light.
type Light struct {
	Type      LightType
	Origin    core.Vec3
	Direction core.Vec3
	Intensity float64
	Color     core.Vec3
}

// NewPointLight creates a light radiating from origin, falling off with 1/r²
func NewPointLight(origin core.Vec3, intensity float64, color core.Vec3) *Light {
	return &Light{
		Type:      Point,
		Origin:    origin,
		Intensity: intensity,
		Color:     color,
	}
}

// NewDirectionalLight creates a light at infinity with constant radiance
func NewDirectionalLight(direction core.Vec3, intensity float64, color core.Vec3) *Light {
	return &Light{
		Type:      Directional,
		Direction: direction,
		Intensity: intensity,
		Color:     color,
	}
}

// DirectionToLight returns the vector from origin toward the light.
// For point lights it is not normalized: its length is the distance to the light.
// For directional lights it is the normalized stored direction.
func DirectionToLight(light *Light, origin core.Vec3) core.Vec3 {
	switch light.Type {
	case Point:
		return light.Origin.Subtract(origin)
	case Directional:
		return light.Direction.Normalized()
	default:
		return core.Zero
	}
}

// Radiance returns the light arriving at target: Color·Intensity/r² for point
// lights and Color·Intensity for directional lights.
// A point light placed exactly on target yields +Inf channels.
func Radiance(light *Light, target core.Vec3) core.Vec3 {
	if light.Type == Point {
		r2 := light.Origin.Subtract(target).LengthSquared()
		return light.Color.Multiply(light.Intensity / r2)
	}
	return light.Color.Multiply(light.Intensity)
}
