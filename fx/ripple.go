package fx

import (
	"image"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// RippleLifetime is how long a ripple lives before it is removed
	RippleLifetime = 600 * time.Millisecond

	// RippleAlpha is the starting fill opacity of a ripple
	RippleAlpha = 0.3

	// RippleScale is the scale a ripple grows toward
	RippleScale = 2.0

	rippleFPS       = 60
	// Critically damped, so no overshoot past RippleScale. At this frequency
	// the scale is within 0.5% of RippleScale when the ripple expires.
	rippleFrequency = 14.0
	rippleDamping   = 1.0
)

var rippleStep = time.Second / rippleFPS

// Ripple is click feedback expanding from a point inside a link
type Ripple struct {
	X, Y float64
	// Size is the base diameter, the larger side of the clicked link
	Size float64
	// Clip is the link box the ripple is drawn inside
	Clip image.Rectangle

	age      time.Duration
	pending  time.Duration
	scale    float64
	velocity float64
}

// Radius returns the current drawn radius
func (r Ripple) Radius() float64 {
	return r.Size / 2 * r.scale
}

// Scale returns the current growth factor in [0, RippleScale]
func (r Ripple) Scale() float64 {
	return r.scale
}

// Alpha fades from RippleAlpha to 0 with an ease-out curve
func (r Ripple) Alpha() float64 {
	progress := float64(r.age) / float64(RippleLifetime)
	if progress >= 1 {
		return 0
	}
	eased := 1 - math.Pow(1-progress, 3)
	return RippleAlpha * (1 - eased)
}

// Ripples owns the live ripples of all links
type Ripples struct {
	spring harmonica.Spring
	items  []Ripple
}

func NewRipples() *Ripples {
	return &Ripples{
		spring: harmonica.NewSpring(harmonica.FPS(rippleFPS), rippleFrequency, rippleDamping),
	}
}

// Spawn starts a ripple for a click at (x, y) on a link with the given bounds
func (rs *Ripples) Spawn(bounds image.Rectangle, x, y int) {
	size := max(bounds.Dx(), bounds.Dy())
	rs.items = append(rs.items, Ripple{
		X:    float64(x),
		Y:    float64(y),
		Size: float64(size),
		Clip: bounds,
	})
}

// Update ages every ripple and drops the expired ones
func (rs *Ripples) Update(dt time.Duration) {
	live := rs.items[:0]
	for _, r := range rs.items {
		r.age += dt
		if r.age >= RippleLifetime {
			continue
		}
		// The spring integrates at a fixed rate regardless of dt
		r.pending += dt
		for r.pending >= rippleStep {
			r.scale, r.velocity = rs.spring.Update(r.scale, r.velocity, RippleScale)
			r.pending -= rippleStep
		}
		live = append(live, r)
	}
	clear(rs.items[len(live):])
	rs.items = live
}

// Active returns the live ripples; the slice is reused by Update
func (rs *Ripples) Active() []Ripple {
	return rs.items
}
