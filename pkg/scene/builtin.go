package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtins = map[string]builtinScene{
	"solid-colors": {
		info:  SceneInfo{Description: "Two spheres in a box of solid colors under a headlight"},
		build: NewSolidColorsScene,
	},
	"lit-spheres": {
		info:  SceneInfo{Description: "Six solid spheres in a room under two point lights"},
		build: NewLitSpheresScene,
	},
	"cook-torrance": {
		info:  SceneInfo{Description: "Metal and plastic Cook-Torrance spheres at three roughness levels"},
		build: NewCookTorranceScene,
	},
	"lambert-phong": {
		info:  SceneInfo{Description: "Lambert and Lambert-Phong spheres on a ground plane"},
		build: NewLambertPhongScene,
	},
	"sun": {
		info:  SceneInfo{Description: "Spheres on a plane under a directional light"},
		build: NewSunScene,
	},
}

// DefaultBuiltin is the scene used when none is requested
const DefaultBuiltin = "cook-torrance"

// ListBuiltins returns the built-in scenes sorted by ID
func ListBuiltins() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		info := b.info
		info.ID = id
		info.DisplayName = titleCase(id)
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Builtin builds a fresh copy of the named scene
func Builtin(id string) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownScene)
	}
	return b.build(), nil
}

// titleCase converts an ID to title case
// e.g., "cook-torrance" -> "Cook Torrance"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
