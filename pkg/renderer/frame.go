package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-brdf-raytracer/pkg/core"
)

// RGB is an 8-bit display color
type RGB struct {
	R, G, B uint8
}

// ToRGB scales a color into [0, 1] with MaxToOne, clamps it, and quantizes it.
// NaN channels are treated as 0 so they cannot spread to the others.
func ToRGB(c core.Vec3) RGB {
	c = core.NewVec3(finite(c.X), finite(c.Y), finite(c.Z))
	c = c.MaxToOne().Clamp(0, 1)
	return RGB{
		R: uint8(c.X * 255),
		G: uint8(c.Y * 255),
		B: uint8(c.Z * 255),
	}
}

// finite maps NaN to 0 and +Inf to the largest float, so MaxToOne still works
func finite(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case math.IsInf(x, 1):
		return math.MaxFloat64
	}
	return x
}

// Frame is a rendered image, stored row-major from the top-left pixel
type Frame struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// At returns the pixel at column px and row py
func (f *Frame) At(px, py int) RGB {
	return f.Pix[py*f.Width+px]
}

// Set writes the pixel at column px and row py
func (f *Frame) Set(px, py int, c RGB) {
	f.Pix[py*f.Width+px] = c
}

// Image converts the frame to an opaque image.RGBA
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for py := 0; py < f.Height; py++ {
		for px := 0; px < f.Width; px++ {
			c := f.At(px, py)
			img.SetRGBA(px, py, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}
