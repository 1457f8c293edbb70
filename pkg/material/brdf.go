package material

import (
	"math"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// DotEpsilon is the floor applied to cosines that end up in a denominator or a power
const DotEpsilon = 1e-4

// clampedDot returns max(dot(a, b), DotEpsilon) of the normalized inputs
func clampedDot(a, b core.Vec3) float64 {
	return math.Max(a.Normalized().Dot(b.Normalized()), DotEpsilon)
}

// LambertBRDF returns the diffuse BRDF kd*cd/π for a scalar reflectance kd
func LambertBRDF(kd float64, cd core.Vec3) core.Vec3 {
	return cd.Multiply(kd / math.Pi)
}

// LambertColor returns the diffuse BRDF kd*cd/π for a per-channel reflectance kd
func LambertColor(kd, cd core.Vec3) core.Vec3 {
	return cd.MultiplyVec(kd).Multiply(1.0 / math.Pi)
}

// Phong returns the white specular lobe ks * cos(α)^exp, where α is the angle
// between l mirrored about n and v.
// l points from the surface to the light, v from the surface to the viewer.
func Phong(ks, exp float64, l, v, n core.Vec3) core.Vec3 {
	n = n.Normalized()
	l = l.Normalized()

	reflected := n.Multiply(2 * n.Dot(l)).Subtract(l)
	cosAlpha := clampedDot(reflected, v)

	return core.White.Multiply(ks * math.Pow(cosAlpha, exp))
}

// FresnelSchlick returns F0 + (1-F0)(1-h·v)^5 with every channel capped at 1.
// h is the half vector, f0 the base reflectivity at normal incidence.
func FresnelSchlick(h, v, f0 core.Vec3) core.Vec3 {
	hDotV := clampedDot(h, v)
	weight := math.Pow(1-hDotV, 5)

	f := f0.Add(core.White.Subtract(f0).Multiply(weight))
	return core.Vec3{X: math.Min(f.X, 1), Y: math.Min(f.Y, 1), Z: math.Min(f.Z, 1)}
}

// MinGGXAlpha is the smallest α the GGX distribution accepts. A perfect
// mirror (roughness 0) would otherwise evaluate 0/0 at n = h.
const MinGGXAlpha = 1e-3

// NormalDistributionGGX is the Trowbridge-Reitz GGX distribution using α = roughness²
func NormalDistributionGGX(n, h core.Vec3, roughness float64) float64 {
	alpha := math.Max(roughness*roughness, MinGGXAlpha)
	alpha2 := alpha * alpha

	nDotH := clampedDot(n, h)
	denom := math.Max(nDotH*nDotH*(alpha2-1)+1, alpha2)

	return alpha2 / (math.Pi * denom * denom)
}

// GeometrySchlickGGX is the Schlick-GGX masking term for one direction,
// with k = (α+1)²/8 for direct lighting and α = roughness²
func GeometrySchlickGGX(n, v core.Vec3, roughness float64) float64 {
	nDotV := clampedDot(n, v)

	alpha := roughness * roughness
	k := (alpha + 1) * (alpha + 1) / 8

	return nDotV / (nDotV*(1-k) + k)
}

// GeometrySmith combines the view and light masking terms
func GeometrySmith(n, v, l core.Vec3, roughness float64) float64 {
	return GeometrySchlickGGX(n, v, roughness) * GeometrySchlickGGX(n, l, roughness)
}
