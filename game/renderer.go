package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"landingfield/fx"
)

const (
	titleScale = 4.0
	labelScale = 1.0
	iconSize   = 18
	iconPad    = 10
)

var (
	textColor   = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	accentColor = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	linkFill    = color.NRGBA{R: 17, G: 17, B: 27, A: 255}
	linkHover   = color.NRGBA{R: 30, G: 31, B: 60, A: 255}
)

// Renderer draws the page chrome on top of the particle field
type Renderer struct {
	face  *text.GoXFace
	icons map[string]*ebiten.Image
}

// NewRenderer creates a renderer with the given rasterized link icons
func NewRenderer(icons map[string]*ebiten.Image) *Renderer {
	return &Renderer{
		face:  text.NewGoXFace(basicfont.Face7x13),
		icons: icons,
	}
}

// TitleHeight returns the drawn height of the name line
func (r *Renderer) TitleHeight() float64 {
	_, h := text.Measure("M", r.face, 0)
	return h * titleScale
}

// DrawTitle draws the typed part of full with a block cursor. The line is
// anchored on the width of the full text so it does not shift while typing.
func (r *Renderer) DrawTitle(screen *ebiten.Image, typed, full string, cursor bool, centerX, y float64) {
	fullWidth, lineHeight := text.Measure(full, r.face, 0)
	x := centerX - fullWidth*titleScale/2

	// Opaque backing keeps the text crisp under the trail overlay
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(fullWidth*titleScale+titleScale*8), float32(lineHeight*titleScale), color.NRGBA{R: 10, G: 10, B: 10, A: 255}, false)

	op := &text.DrawOptions{}
	op.GeoM.Scale(titleScale, titleScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, typed, r.face, op)

	if cursor {
		typedWidth, _ := text.Measure(typed, r.face, 0)
		cx := x + typedWidth*titleScale + titleScale
		vector.DrawFilledRect(screen, float32(cx), float32(y), float32(titleScale*5), float32(lineHeight*titleScale), accentColor, false)
	}
}

// DrawLinks draws every link box; hovered is the index under the pointer or -1
func (r *Renderer) DrawLinks(screen *ebiten.Image, links []fx.Link, hovered int) {
	for i, l := range links {
		b := l.Bounds
		fill := linkFill
		if i == hovered {
			fill = linkHover
		}
		vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), fill, false)
		vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, accentColor, false)

		labelX := float64(b.Min.X + iconPad)
		if icon, ok := r.icons[l.Icon]; ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(labelX, float64(b.Min.Y+(b.Dy()-iconSize)/2))
			screen.DrawImage(icon, op)
			labelX += iconSize + iconPad
		}

		_, h := text.Measure(l.Label, r.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Scale(labelScale, labelScale)
		op.GeoM.Translate(labelX, float64(b.Min.Y)+(float64(b.Dy())-h*labelScale)/2)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, l.Label, r.face, op)
	}
}

// DrawRipples fills each ripple clipped to its link box
func (r *Renderer) DrawRipples(screen *ebiten.Image, ripples []fx.Ripple) {
	for _, rp := range ripples {
		clip, ok := screen.SubImage(rp.Clip).(*ebiten.Image)
		if !ok || rp.Radius() <= 0 {
			continue
		}
		clr := accentColor
		clr.A = uint8(rp.Alpha()*255 + 0.5)
		screenSurface{dst: clip}.FillCircle(rp.X, rp.Y, rp.Radius(), clr)
	}
}
