package renderer

import (
	"fmt"
	"strings"
)

// LightingMode selects which term of the lighting equation a light contributes
type LightingMode int

const (
	ObservedArea LightingMode = iota + 1 // Lambert cosine only
	Radiance                             // Incident radiance only
	BRDF                                 // Material response only
	Combined                             // Radiance * BRDF * cosine
)

var lightingModeNames = map[LightingMode]string{
	ObservedArea: "observed-area",
	Radiance:     "radiance",
	BRDF:         "brdf",
	Combined:     "combined",
}

func (m LightingMode) String() string {
	if name, ok := lightingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("LightingMode(%d)", int(m))
}

// Valid reports whether m is one of the four modes
func (m LightingMode) Valid() bool {
	return m >= ObservedArea && m <= Combined
}

// Next returns the following mode, wrapping from Combined back to ObservedArea
func (m LightingMode) Next() LightingMode {
	if m >= Combined || m < ObservedArea {
		return ObservedArea
	}
	return m + 1
}

// ParseLightingMode parses a mode name as printed by String
func ParseLightingMode(s string) (LightingMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, modeName := range lightingModeNames {
		if name == modeName {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown lighting mode %q", s)
}
