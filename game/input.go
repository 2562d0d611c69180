package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource defines where pointer movement and clicks come from
type PointerSource interface {
	// Poll returns the pointer position and whether it moved since the last poll
	Poll() (x, y float64, moved bool)

	// Clicks returns the press positions of this tick
	Clicks() []image.Point
}

// CursorPointer reads the mouse cursor, with the first touch taking over
// while a finger is down
type CursorPointer struct {
	lastX, lastY int
	primed       bool

	touches []ebiten.TouchID
	clicks  []image.Point
}

// NewCursorPointer creates a pointer source backed by ebiten input
func NewCursorPointer() *CursorPointer {
	return &CursorPointer{
		touches: make([]ebiten.TouchID, 0, 4),
		clicks:  make([]image.Point, 0, 4),
	}
}

// Poll reports raw coordinates. The first poll only records a baseline so
// the field keeps its initial pointer until the cursor really moves.
func (p *CursorPointer) Poll() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		x, y = ebiten.TouchPosition(p.touches[0])
	}

	if !p.primed {
		p.lastX, p.lastY = x, y
		p.primed = true
		return float64(x), float64(y), false
	}
	if x == p.lastX && y == p.lastY {
		return float64(x), float64(y), false
	}
	p.lastX, p.lastY = x, y
	return float64(x), float64(y), true
}

func (p *CursorPointer) Clicks() []image.Point {
	p.clicks = p.clicks[:0]
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.clicks = append(p.clicks, image.Pt(x, y))
	}
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		p.clicks = append(p.clicks, image.Pt(x, y))
	}
	return p.clicks
}
