package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-brdf-raytracer/pkg/core"
	"github.com/df07/go-brdf-raytracer/pkg/output"
	"github.com/df07/go-brdf-raytracer/pkg/renderer"
	"github.com/df07/go-brdf-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene        string                // Built-in scene ID
	Width        int                   // Image width
	Height       int                   // Image height
	Mode         renderer.LightingMode // Lighting mode
	Shadows      bool                  // Cast shadow rays
	ShadowFactor float64               // Occluded light multiplier
	HUD          bool                  // Draw the info overlay
	Pitch        float64               // Camera pitch in degrees
	Yaw          float64               // Camera yaw in degrees
	Forward      float64               // Camera move along forward
	Right        float64               // Camera move along right
}

var renderCounter atomic.Int64

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: scene.DefaultBuiltin}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	req.Mode = renderer.Combined
	if mode := query.Get("mode"); mode != "" {
		parsed, err := renderer.ParseLightingMode(mode)
		if err != nil {
			return nil, err
		}
		req.Mode = parsed
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 320, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 240, 16, 2000); err != nil {
		return nil, err
	}
	if req.Shadows, err = parseBoolParam(query, "shadows", true); err != nil {
		return nil, err
	}
	if req.ShadowFactor, err = parseFloatParam(query, "shadowFactor", 0.5, 0, 1); err != nil {
		return nil, err
	}
	if req.HUD, err = parseBoolParam(query, "hud", false); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(query, "pitch", 0, -89, 89); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(query, "yaw", 0, -180, 180); err != nil {
		return nil, err
	}
	if req.Forward, err = parseFloatParam(query, "forward", 0, -100, 100); err != nil {
		return nil, err
	}
	if req.Right, err = parseFloatParam(query, "right", 0, -100, 100); err != nil {
		return nil, err
	}

	return req, nil
}

// RenderConfig converts the request into renderer settings
func (req *RenderRequest) RenderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		Width:           req.Width,
		Height:          req.Height,
		Mode:            req.Mode,
		ShadowsDisabled: !req.Shadows,
		ShadowFactor:    req.ShadowFactor,
	}
}

// createScene builds the requested scene and applies the camera adjustments
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Builtin(req.Scene)
	if err != nil {
		return nil, err
	}

	camera := sceneObj.Camera()
	if req.Pitch != 0 || req.Yaw != 0 {
		camera.Rotate(core.DegreesToRadians(req.Pitch), core.DegreesToRadians(req.Yaw))
	}
	if req.Forward != 0 || req.Right != 0 {
		camera.Move(req.Forward, req.Right)
	}

	return sceneObj, nil
}

// handleRender renders one frame and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer sceneObj.Close()

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	logger := NewWebLogger(renderID, s.console)

	raytracer, err := renderer.NewRaytracer(sceneObj, req.RenderConfig(), logger)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	frame, stats := raytracer.Render()

	var hud []string
	if req.HUD {
		hud = output.HUDLines(req.Scene, raytracer.Config(), stats)
	}

	var buf bytes.Buffer
	if err := output.EncodePNG(&buf, frame, hud); err != nil {
		logger.Printf("Error encoding frame: %v\n", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Primary-Hits", strconv.Itoa(stats.PrimaryHits))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
