package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface adapts an ebiten image to field.Surface
type screenSurface struct {
	dst *ebiten.Image
}

func (s screenSurface) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (s screenSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), clr, true)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
