package core

// Common linear RGB colors
var (
	White   = Vec3{1, 1, 1}
	Black   = Vec3{0, 0, 0}
	Red     = Vec3{1, 0, 0}
	Green   = Vec3{0, 1, 0}
	Blue    = Vec3{0, 0, 1}
	Yellow  = Vec3{1, 1, 0}
	Cyan    = Vec3{0, 1, 1}
	Magenta = Vec3{1, 0, 1}
	Gray    = Vec3{0.5, 0.5, 0.5}
)

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// MaxComponent returns the largest of the three components
func (v Vec3) MaxComponent() float64 {
	return max(v.X, v.Y, v.Z)
}

// MaxToOne scales the color down so its brightest channel is at most 1.
// The channels keep their ratios, so hue survives where a hard clip would not.
func (v Vec3) MaxToOne() Vec3 {
	m := v.MaxComponent()
	if m <= 1 {
		return v
	}
	return v.Divide(m)
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}
