package material

import (
	"math"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// DielectricF0 is the base reflectivity used for every non-metal
var DielectricF0 = core.NewVec3(0.04, 0.04, 0.04)

// CookTorrance is a microfacet material: GGX distribution, Smith geometry and
// Schlick Fresnel, with a Lambert diffuse base for dielectrics
type CookTorrance struct {
	Albedo    core.Vec3
	Metalness float64 // 1 = metal, anything lower is treated as a dielectric
	Roughness float64 // 0 = smooth, 1 = rough
}

// NewCookTorrance creates a new Cook-Torrance material
func NewCookTorrance(albedo core.Vec3, metalness, roughness float64) *CookTorrance {
	// Clamp parameters to valid range
	metalness = math.Max(0.0, math.Min(metalness, 1.0))
	roughness = math.Max(0.0, math.Min(roughness, 1.0))

	return &CookTorrance{Albedo: albedo, Metalness: metalness, Roughness: roughness}
}

// IsMetal reports whether the material has no diffuse term
func (m *CookTorrance) IsMetal() bool {
	return m.Metalness >= 1
}

// F0 returns the base reflectivity: the albedo for metals, DielectricF0 otherwise
func (m *CookTorrance) F0() core.Vec3 {
	if m.IsMetal() {
		return m.Albedo
	}
	return DielectricF0
}

// Terms returns the diffuse and specular contributions separately
func (m *CookTorrance) Terms(hit core.HitRecord, l, v core.Vec3) (diffuse, specular core.Vec3) {
	n := hit.Normal.Normalized()
	h := v.Add(l).Normalized()

	f := FresnelSchlick(h, v, m.F0())
	d := NormalDistributionGGX(n, h, m.Roughness)
	g := GeometrySmith(n, v, l, m.Roughness)

	// DFG / 4(v·n)(l·n)
	denom := 4 * clampedDot(v, n) * clampedDot(l, n)
	specular = f.Multiply(d * g / denom)

	if m.IsMetal() {
		return core.Black, specular
	}

	// Whatever Fresnel does not reflect is left for the diffuse base
	kd := core.White.Subtract(f)
	return LambertColor(kd, m.Albedo), specular
}

// Shade returns diffuse + specular, scaled so no channel exceeds 1
func (m *CookTorrance) Shade(hit core.HitRecord, l, v core.Vec3) core.Vec3 {
	diffuse, specular := m.Terms(hit, l, v)
	return diffuse.Add(specular).MaxToOne()
}
