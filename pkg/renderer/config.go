package renderer

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains the per-frame render settings
type RenderConfig struct {
	Width           int          // Image width in pixels
	Height          int          // Image height in pixels
	Mode            LightingMode // What each light contributes
	ShadowsDisabled bool         // Skip shadow rays entirely
	ShadowFactor    float64      // Multiplier for an occluded light's contribution (0-1)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:        640,
		Height:       480,
		Mode:         Combined,
		ShadowFactor: 0.5,
	}
}

// MergeRenderConfig applies the non-zero fields of overrides on top of base.
// ShadowsDisabled can only be switched on by an override.
func MergeRenderConfig(base, overrides RenderConfig) RenderConfig {
	result := base

	if overrides.Width > 0 {
		result.Width = overrides.Width
	}
	if overrides.Height > 0 {
		result.Height = overrides.Height
	}
	if overrides.Mode != 0 {
		result.Mode = overrides.Mode
	}
	if overrides.ShadowsDisabled {
		result.ShadowsDisabled = true
	}
	if overrides.ShadowFactor != 0 {
		result.ShadowFactor = overrides.ShadowFactor
	}

	return result
}

// Validate reports the first unusable setting
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: lighting mode %d", ErrInvalidConfig, int(c.Mode))
	}
	if c.ShadowFactor < 0 || c.ShadowFactor > 1 {
		return fmt.Errorf("%w: shadow factor %g outside [0, 1]", ErrInvalidConfig, c.ShadowFactor)
	}
	return nil
}
