// Package snapshot renders a particle field without a window, onto an
// in-memory canvas, and writes the result as PNG.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// ErrEmptySurface is returned for a canvas without pixels
var ErrEmptySurface = errors.New("snapshot: surface must be at least 1x1")

// CanvasSurface draws through an HTML5-canvas style API onto an RGBA image
type CanvasSurface struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	width   int
	height  int
}

// NewCanvasSurface allocates a width x height surface
func NewCanvasSurface(width, height int) (*CanvasSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptySurface, width, height)
	}
	backend := softwarebackend.New(width, height)
	return &CanvasSurface{
		backend: backend,
		cv:      canvas.New(backend),
		width:   width,
		height:  height,
	}, nil
}

// Clear paints the whole surface with an opaque colour
func (s *CanvasSurface) Clear(clr color.Color) {
	s.cv.SetFillStyle(channels(clr))
	s.cv.FillRect(0, 0, float64(s.width), float64(s.height))
}

func (s *CanvasSurface) FillRect(x, y, width, height float64, clr color.Color) {
	s.cv.SetFillStyle(channels(clr))
	s.cv.FillRect(x, y, width, height)
}

func (s *CanvasSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	s.cv.BeginPath()
	s.cv.Arc(cx, cy, radius, 0, math.Pi*2, false)
	s.cv.SetFillStyle(channels(clr))
	s.cv.Fill()
}

func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.SetStrokeStyle(channels(clr))
	s.cv.SetLineWidth(width)
	s.cv.Stroke()
}

// Image returns the backing pixels
func (s *CanvasSurface) Image() *image.RGBA {
	return s.backend.Image
}

// WritePNG encodes the current pixels to path
func (s *CanvasSurface) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, s.Image()); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return f.Close()
}

// channels splits clr into straight-alpha 0-255 components, the form the
// canvas blends as-is. A color.Color would be read premultiplied.
func channels(clr color.Color) (int, int, int, int) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return int(c.R), int(c.G), int(c.B), int(c.A)
}
