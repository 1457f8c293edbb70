package material

import (
	"math"
	"testing"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

func TestLambert_ProportionalToKd(t *testing.T) {
	cd := core.NewVec3(0.2, 0.5, 0.9)

	full := LambertBRDF(1.0, cd)
	expected := cd.Multiply(1.0 / math.Pi)
	if !full.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected cd/π = %v, got %v", expected, full)
	}

	for _, kd := range []float64{0, 0.25, 0.5, 2} {
		got := LambertBRDF(kd, cd)
		if !got.ApproxEqual(full.Multiply(kd), 1e-12) {
			t.Errorf("kd=%f: expected %v, got %v", kd, full.Multiply(kd), got)
		}
	}
}

func TestLambertColor_PerChannel(t *testing.T) {
	kd := core.NewVec3(1, 0.5, 0)
	got := LambertColor(kd, core.White)
	expected := core.NewVec3(1/math.Pi, 0.5/math.Pi, 0)
	if !got.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPhong_MirrorDirection(t *testing.T) {
	n := core.UnitY
	l := core.NewVec3(1, 1, 0).Normalized()
	v := core.NewVec3(-1, 1, 0).Normalized()

	got := Phong(0.5, 10, l, v, n)
	if !got.ApproxEqual(core.NewVec3(0.5, 0.5, 0.5), 1e-9) {
		t.Errorf("Viewing along the mirror direction should give ks, got %v", got)
	}
}

func TestPhong_FallsOffAwayFromMirror(t *testing.T) {
	n := core.UnitY
	l := core.NewVec3(1, 1, 0).Normalized()

	mirror := Phong(1, 20, l, core.NewVec3(-1, 1, 0).Normalized(), n).X
	offAxis := Phong(1, 20, l, core.NewVec3(-0.5, 1, 0).Normalized(), n).X
	opposite := Phong(1, 20, l, core.NewVec3(1, -1, 0).Normalized(), n).X

	if !(mirror > offAxis && offAxis > opposite) {
		t.Errorf("Expected decreasing highlight: mirror=%g off=%g opposite=%g", mirror, offAxis, opposite)
	}
	if math.IsNaN(opposite) || opposite < 0 {
		t.Errorf("Back-facing lobe must be clamped, got %g", opposite)
	}
}

func TestFresnelSchlick_NormalIncidence(t *testing.T) {
	f0 := core.NewVec3(0.955, 0.637, 0.538)
	got := FresnelSchlick(core.UnitZ, core.UnitZ, f0)
	if got != f0 {
		t.Errorf("At h·v=1 Fresnel must equal F0 %v, got %v", f0, got)
	}
}

func TestFresnelSchlick_GrazingAndClamp(t *testing.T) {
	f0 := DielectricF0
	h := core.UnitZ
	v := core.NewVec3(1, 0, 0.001).Normalized()

	got := FresnelSchlick(h, v, f0)
	if got.X < 0.99 || got.X > 1 {
		t.Errorf("Grazing Fresnel should approach 1, got %v", got)
	}

	bright := FresnelSchlick(h, h, core.NewVec3(1.5, 0.5, 2))
	if bright.X != 1 || bright.Z != 1 || bright.Y != 0.5 {
		t.Errorf("Channels above 1 must be clamped, got %v", bright)
	}
}

func TestNormalDistributionGGX(t *testing.T) {
	tests := []struct {
		name      string
		n, h      core.Vec3
		roughness float64
		expected  float64
	}{
		{"rough surface is uniform", core.UnitZ, core.NewVec3(0.3, 0, 1).Normalized(), 1.0, 1 / math.Pi},
		{"peak at n=h", core.UnitZ, core.UnitZ, 0.5, 16 / math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalDistributionGGX(tt.n, tt.h, tt.roughness)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}

	// A perfect mirror peaks at n=h with a large but finite value
	mirror := NormalDistributionGGX(core.UnitY, core.UnitY, 0)
	if math.IsNaN(mirror) || math.IsInf(mirror, 0) {
		t.Fatalf("Roughness 0 at n=h must stay finite, got %f", mirror)
	}
	if expected := 1 / (math.Pi * MinGGXAlpha * MinGGXAlpha); math.Abs(mirror-expected) > 1e-6*expected {
		t.Errorf("Expected mirror peak %f, got %f", expected, mirror)
	}
	if off := NormalDistributionGGX(core.UnitY, core.NewVec3(0.3, 1, 0).Normalized(), 0); math.IsNaN(off) || off > mirror {
		t.Errorf("Off-peak mirror value should be finite and below the peak, got %f", off)
	}

	// Smoother surfaces concentrate the distribution around n
	smooth := NormalDistributionGGX(core.UnitZ, core.UnitZ, 0.2)
	rough := NormalDistributionGGX(core.UnitZ, core.UnitZ, 0.8)
	if smooth <= rough {
		t.Errorf("Expected smooth peak %f > rough peak %f", smooth, rough)
	}
}

func TestGeometrySchlickGGX(t *testing.T) {
	if got := GeometrySchlickGGX(core.UnitZ, core.UnitZ, 0.7); math.Abs(got-1) > 1e-12 {
		t.Errorf("Head-on masking should be 1, got %f", got)
	}

	// Roughness 1: α=1, k=0.5, n·v=0.5 -> 0.5/(0.25+0.5)
	v := core.NewVec3(math.Sqrt(3)/2, 0, 0.5)
	if got := GeometrySchlickGGX(core.UnitZ, v, 1.0); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("Expected 2/3, got %f", got)
	}

	// Below the horizon the cosine is clamped instead of going negative
	if got := GeometrySchlickGGX(core.UnitZ, core.UnitZ.Negate(), 0.5); got <= 0 || math.IsNaN(got) {
		t.Errorf("Expected small positive value, got %f", got)
	}
}

func TestGeometrySmith_IsProduct(t *testing.T) {
	n := core.UnitZ
	v := core.NewVec3(0.2, 0.1, 1).Normalized()
	l := core.NewVec3(-0.6, 0.3, 0.7).Normalized()

	expected := GeometrySchlickGGX(n, v, 0.4) * GeometrySchlickGGX(n, l, 0.4)
	if got := GeometrySmith(n, v, l, 0.4); math.Abs(got-expected) > 1e-15 {
		t.Errorf("Expected %f, got %f", expected, got)
	}
}
