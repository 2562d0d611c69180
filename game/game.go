package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"landingfield/field"
	"landingfield/fx"
)

// Game is the landing page: particle field, typed name and link row
type Game struct {
	ctx    context.Context
	config Config

	field    *field.Field
	pointer  PointerSource
	typer    *fx.Typewriter
	links    []fx.Link
	ripples  *fx.Ripples
	renderer *Renderer
	debug    DebugState

	// Surface size, set by Layout
	width       int
	height      int
	initialized bool
	hovered     int

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling, nil when disabled
	profiler      *Profiler
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates the page. Cancelling ctx ends the run loop.
func NewGame(ctx context.Context, config Config) (*Game, error) {
	icons, err := loadIcons(iconSize)
	if err != nil {
		return nil, err
	}

	var profiler *Profiler
	if config.ProfileDir != "" {
		profiler, err = NewProfiler(config.ProfileDir)
		if err != nil {
			return nil, err
		}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	links := make([]fx.Link, len(config.Links))
	copy(links, config.Links)

	return &Game{
		ctx:            ctx,
		config:         config,
		field:          field.NewField(config.Field, rand.New(rand.NewSource(seed))),
		pointer:        NewCursorPointer(),
		typer:          fx.NewTypewriter(config.Name, rand.New(rand.NewSource(seed+1))),
		links:          links,
		ripples:        fx.NewRipples(),
		renderer:       NewRenderer(icons),
		debug:          DebugState{ShowStats: config.ShowStats},
		hovered:        -1,
		fps:            60.0,
		profiler:       profiler,
		gameStartTime:  time.Now(),
		lastUpdateTime: time.Now(),
	}, nil
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now
	if dt > 100*time.Millisecond {
		dt = 100 * time.Millisecond
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowStats = !g.debug.ShowStats
	}

	g.trackFPS(dt.Seconds())

	if x, y, moved := g.pointer.Poll(); moved {
		g.field.SetPointer(x, y)
	}
	p := g.field.Pointer()
	g.hovered = fx.HitTest(g.links, int(p.X), int(p.Y))

	for _, click := range g.pointer.Clicks() {
		i := fx.HitTest(g.links, click.X, click.Y)
		if i < 0 {
			continue
		}
		g.ripples.Spawn(g.links[i].Bounds, click.X, click.Y)
		log.Printf("Link %q clicked: %s", g.links[i].Label, g.links[i].URL)
	}

	g.field.Update()
	g.typer.Update(dt)
	g.ripples.Update(dt)

	return nil
}

// trackFPS updates the FPS estimate every half second and triggers the
// profiler on sustained drops
func (g *Game) trackFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	// Skip the first seconds while the window settles
	if g.profiler == nil || g.fps >= g.config.FPSDropThreshold || time.Since(g.gameStartTime) < 3*time.Second {
		return
	}
	stats := g.field.Stats()
	reason := fmt.Sprintf("fps%.0f-particles%d-lines%d", g.fps, stats.Particles, stats.Connections)
	if err := g.profiler.CaptureProfile(reason); err == nil {
		log.Printf("FPS drop detected (%.0f FPS), capturing profile", g.fps)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Draw(screenSurface{dst: screen})

	centerX := float64(g.width) / 2
	titleY := float64(g.height)/2 - g.renderer.TitleHeight()
	g.renderer.DrawTitle(screen, g.typer.Text(), g.config.Name, g.typer.CursorVisible(), centerX, titleY)
	g.renderer.DrawLinks(screen, g.links, g.hovered)
	g.renderer.DrawRipples(screen, g.ripples.Active())

	if g.debug.ShowStats {
		p := g.field.Pointer()
		drawStats(screen, g.field.Stats(), g.fps, p.X, p.Y, g.profiler != nil && g.profiler.IsProfiling())
	}
}

// Layout doubles as the resize notification: a new outside size rebuilds
// the particle field and re-centres the link row
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if !g.initialized || w != g.width || h != g.height {
		g.resize(w, h)
	}
	return w, h
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	g.field.Resize(width, height)
	if !g.initialized {
		g.field.SetPointer(float64(width)/2, float64(height)/2)
		g.initialized = true
	}
	fx.LayoutLinks(g.links, width/2, height/2+g.config.LinkHeight, g.config.LinkWidth, g.config.LinkHeight, g.config.LinkGap)
}
