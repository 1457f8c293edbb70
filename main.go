package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/geometry"
	"github.com/df07/go-brdf-raytracer/pkg/output"
	"github.com/df07/go-brdf-raytracer/pkg/renderer"
	"github.com/df07/go-brdf-raytracer/pkg/scene"
)

// options holds the parsed command line flags
type options struct {
	scene        string
	mode         string
	shadows      bool
	shadowFactor float64
	width        int
	height       int
	out          string
	hud          bool
	obj          string
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", scene.DefaultBuiltin, "Built-in scene to render (see -list)")
	mode := flag.String("mode", renderer.Combined.String(), "Lighting mode: observed-area, radiance, brdf or combined")
	shadows := flag.Bool("shadows", true, "Cast shadow rays")
	shadowFactor := flag.Float64("shadow-factor", 0.5, "Multiplier applied to an occluded light's contribution")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	hud := flag.Bool("hud", false, "Draw scene and render settings onto the image")
	obj := flag.String("obj", "", "Wavefront OBJ mesh to load into the scene (stored, not intersected)")
	list := flag.Bool("list", false, "List built-in scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("BRDF Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		printScenes()
		return
	}

	opts := options{
		scene:        *sceneType,
		mode:         *mode,
		shadows:      *shadows,
		shadowFactor: *shadowFactor,
		width:        *width,
		height:       *height,
		out:          *out,
		hud:          *hud,
		obj:          *obj,
	}

	filename, err := run(opts, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltins() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
}

// createScene looks up a built-in scene by name
func createScene(name string) (*scene.Scene, error) {
	return scene.Builtin(name)
}

// renderConfig turns the flags into a validated render configuration
func renderConfig(opts options) (renderer.RenderConfig, error) {
	mode, err := renderer.ParseLightingMode(opts.mode)
	if err != nil {
		return renderer.RenderConfig{}, err
	}

	config := renderer.DefaultRenderConfig()
	config.Width = opts.width
	config.Height = opts.height
	config.Mode = mode
	config.ShadowsDisabled = !opts.shadows
	config.ShadowFactor = opts.shadowFactor

	return config, config.Validate()
}

// run renders one frame and writes it to disk, returning the file name
func run(opts options, logger core.Logger) (string, error) {
	selectedScene, err := createScene(opts.scene)
	if err != nil {
		return "", err
	}
	defer selectedScene.Close()

	if opts.obj != "" {
		mesh, err := selectedScene.AddOBJMesh(opts.obj, geometry.BackFaceCulling, 0, logger)
		if err != nil {
			return "", err
		}
		logger.Printf("Added mesh with %d triangles (%d primitives in scene)\n",
			mesh.TriangleCount(), selectedScene.PrimitiveCount())
	}

	config, err := renderConfig(opts)
	if err != nil {
		return "", err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config, logger)
	if err != nil {
		return "", err
	}

	frame, stats := raytracer.Render()

	var hud []string
	if opts.hud {
		hud = output.HUDLines(opts.scene, config, stats)
	}

	filename := opts.out
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", opts.scene, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := output.SavePNG(filename, frame, hud); err != nil {
		return "", fmt.Errorf("error saving PNG: %w", err)
	}
	return filename, nil
}
