package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"landingfield/field"
)

// DebugState holds the debug overlay flags
type DebugState struct {
	ShowStats bool // FPS, particle and connection counters
}

// drawStats prints the overlay in the top left corner
func drawStats(screen *ebiten.Image, stats field.Stats, fps float64, pointerX, pointerY float64, profiling bool) {
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nParticles: %d  Lines: %d\nSurface: %dx%d  Frames: %d\nPointer: %.0f,%.0f",
		fps, ebiten.ActualTPS(),
		stats.Particles, stats.Connections,
		stats.Width, stats.Height, stats.Frames,
		pointerX, pointerY)
	height := float32(68)
	if profiling {
		msg += "\nProfiling..."
		height += 16
	}

	vector.DrawFilledRect(screen, 4, 4, 260, height, color.NRGBA{R: 0, G: 0, B: 0, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, msg, 8, 6)
}
