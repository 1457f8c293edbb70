package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/df07/go-brdf-raytracer/pkg/renderer"
)

const (
	hudPadding    = 4.0
	hudLineHeight = 15.0
)

// HUDLines describes a frame for the on-image overlay
func HUDLines(sceneID string, config renderer.RenderConfig, stats renderer.FrameStats) []string {
	shadows := "on"
	if config.ShadowsDisabled {
		shadows = "off"
	}
	return []string{
		fmt.Sprintf("%s %dx%d", sceneID, config.Width, config.Height),
		fmt.Sprintf("mode: %s  shadows: %s (%.2f)", config.Mode, shadows, config.ShadowFactor),
		fmt.Sprintf("%v  hits %.0f%%", stats.Duration.Round(time.Millisecond), stats.HitRatio()*100),
	}
}

// Annotate draws the frame into a drawing context, with lines of text
// over a translucent box in the top-left corner when any are given
func Annotate(frame *renderer.Frame, lines ...string) *gg.Context {
	dc := gg.NewContextForRGBA(frame.Image())
	if len(lines) == 0 {
		return dc
	}

	width := 0.0
	for _, line := range lines {
		if w, _ := dc.MeasureString(line); w > width {
			width = w
		}
	}
	height := float64(len(lines)) * hudLineHeight

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, 0, width+2*hudPadding, height+2*hudPadding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	for i, line := range lines {
		y := hudPadding + float64(i)*hudLineHeight
		dc.DrawStringAnchored(line, hudPadding, y, 0, 1)
	}

	return dc
}

// EncodePNG writes the frame, with an optional overlay, as PNG
func EncodePNG(w io.Writer, frame *renderer.Frame, hud []string) error {
	if err := Annotate(frame, hud...).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the frame, with an optional overlay, to filename,
// creating parent directories as needed
func SavePNG(filename string, frame *renderer.Frame, hud []string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := Annotate(frame, hud...).SavePNG(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}
