package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/geometry"
	"github.com/df07/go-brdf-raytracer/pkg/lights"
	"github.com/df07/go-brdf-raytracer/pkg/material"
)

const (
	// ShadowOffset pushes shadow ray origins off the surface along the normal
	ShadowOffset = 0.01
	// CosineEpsilon is the floor for the Lambert cosine
	CosineEpsilon = 1e-4
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Scene interface to avoid depending on the scene package
type Scene interface {
	Camera() *geometry.Camera
	Lights() []*lights.Light
	Material(i int) material.Material
	GetClosestHit(ray core.Ray) core.HitRecord
	DoesHit(ray core.Ray) bool
	Validate() error
}

// Raytracer renders a validated scene one frame at a time on the calling goroutine
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer validates the config and the scene and creates a raytracer.
// Validating the scene finalizes it, so no primitives can be added afterwards.
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	return &Raytracer{scene: scene, config: config, logger: logger}, nil
}

// Config returns the current render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// CycleLightingMode advances to the next lighting mode and returns it
func (rt *Raytracer) CycleLightingMode() LightingMode {
	rt.config.Mode = rt.config.Mode.Next()
	return rt.config.Mode
}

// ToggleShadows flips shadow rays on or off and reports whether they are now enabled
func (rt *Raytracer) ToggleShadows() bool {
	rt.config.ShadowsDisabled = !rt.config.ShadowsDisabled
	return !rt.config.ShadowsDisabled
}

// Render produces one frame. The camera basis is recomputed at the start of every call.
func (rt *Raytracer) Render() (*Frame, FrameStats) {
	startTime := time.Now()

	frame := NewFrame(rt.config.Width, rt.config.Height)
	rays := NewPrimaryRays(rt.scene.Camera(), rt.config.Width, rt.config.Height)
	stats := FrameStats{}

	for py := 0; py < rt.config.Height; py++ {
		for px := 0; px < rt.config.Width; px++ {
			color := rt.rayColor(rays.GetRay(px, py), &stats)
			frame.Set(px, py, ToRGB(color))
			stats.TotalPixels++
		}
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Rendered %dx%d (%s, shadows %t) in %v: %.1f%% hits, %d/%d shadow rays occluded\n",
		rt.config.Width, rt.config.Height, rt.config.Mode, !rt.config.ShadowsDisabled,
		stats.Duration, stats.HitRatio()*100, stats.OccludedRays, stats.ShadowRays)

	return frame, stats
}

// rayColor returns the unclamped color seen along a primary ray; black on a miss
func (rt *Raytracer) rayColor(ray core.Ray, stats *FrameStats) core.Vec3 {
	hit := rt.scene.GetClosestHit(ray)
	if !hit.DidHit {
		return core.Black
	}
	stats.PrimaryHits++

	viewDir := ray.Direction.Negate()
	mat := rt.scene.Material(hit.MaterialIndex)

	color := core.Black
	for _, light := range rt.scene.Lights() {
		color = color.Add(rt.lightContribution(light, hit, mat, viewDir, stats))
	}
	return color
}

// lightContribution evaluates one light at a hit according to the lighting mode,
// attenuated by ShadowFactor when the light is occluded
func (rt *Raytracer) lightContribution(light *lights.Light, hit core.HitRecord, mat material.Material, viewDir core.Vec3, stats *FrameStats) core.Vec3 {
	stats.LightsSampled++

	shadowRay := ShadowRay(light, hit)
	normal := hit.Normal.Normalized()
	cosine := math.Max(normal.Dot(shadowRay.Direction), CosineEpsilon)

	var contribution core.Vec3
	switch rt.config.Mode {
	case ObservedArea:
		if cosine > 0 {
			contribution = core.NewVec3(cosine, cosine, cosine)
		}
	case Radiance:
		contribution = lights.Radiance(light, hit.Origin)
	case BRDF:
		contribution = mat.Shade(hit, shadowRay.Direction, viewDir)
	case Combined:
		radiance := lights.Radiance(light, hit.Origin)
		brdf := mat.Shade(hit, shadowRay.Direction, viewDir)
		contribution = radiance.MultiplyVec(brdf).Multiply(cosine)
	}

	if rt.config.ShadowsDisabled {
		return contribution
	}

	stats.ShadowRays++
	if rt.scene.DoesHit(shadowRay) {
		stats.OccludedRays++
		return contribution.Multiply(rt.config.ShadowFactor)
	}
	return contribution
}

// ShadowRay builds the ray from just above the hit toward the light.
// For point lights it stops at the light; for directional lights it is unbounded.
func ShadowRay(light *lights.Light, hit core.HitRecord) core.Ray {
	origin := hit.Origin.Add(hit.Normal.Multiply(ShadowOffset))
	direction := lights.DirectionToLight(light, origin)

	tMax := math.MaxFloat64
	if light.Type == lights.Point {
		tMax = direction.Normalize()
	}

	return core.NewBoundedRay(origin, direction, core.RayEpsilon, tMax)
}
