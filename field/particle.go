package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single drifting point of the field
type Particle struct {
	Pos r2.Vec // surface pixel position
	Vel r2.Vec // pixels per frame

	// Radius is the display radius for the current frame, derived from OriginalRadius
	Radius         float64
	OriginalRadius float64
}

// NewParticle places a particle uniformly inside a width x height surface
func NewParticle(rng *rand.Rand, width, height float64, p Params) Particle {
	radius := rng.Float64()*p.RadiusSpread + p.MinRadius
	return Particle{
		Pos: r2.Vec{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		},
		Vel: r2.Vec{
			X: (rng.Float64() - 0.5) * 2 * p.MaxSpeed,
			Y: (rng.Float64() - 0.5) * 2 * p.MaxSpeed,
		},
		Radius:         radius,
		OriginalRadius: radius,
	}
}

// Update advances the particle by one frame within field f
func (pt *Particle) Update(f *Field) {
	p := &f.params

	pt.Pos = r2.Add(pt.Pos, pt.Vel)

	// Toroidal wrap
	if pt.Pos.X < 0 {
		pt.Pos.X = f.width
	}
	if pt.Pos.X > f.width {
		pt.Pos.X = 0
	}
	if pt.Pos.Y < 0 {
		pt.Pos.Y = f.height
	}
	if pt.Pos.Y > f.height {
		pt.Pos.Y = 0
	}

	d := r2.Sub(f.pointer, pt.Pos)
	distance := r2.Norm(d)
	if distance < p.RepulsionRadius {
		force := f.Repulsion(distance)
		angle := math.Atan2(d.Y, d.X)
		push := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		pt.Vel = r2.Sub(pt.Vel, r2.Scale(force*p.RepulsionStrength, push))
		pt.Radius = pt.OriginalRadius * (1 + force*p.Growth)
	} else {
		pt.Radius = pt.OriginalRadius
	}

	pt.Vel = r2.Scale(p.Damping, pt.Vel)

	// Keep a floor of motion so the field never freezes
	if math.Abs(pt.Vel.X) < p.MinSpeed {
		pt.Vel.X += (f.rng.Float64() - 0.5) * p.Jitter
	}
	if math.Abs(pt.Vel.Y) < p.MinSpeed {
		pt.Vel.Y += (f.rng.Float64() - 0.5) * p.Jitter
	}
}

// Opacity returns the draw opacity for a pointer at the given position
func (pt *Particle) Opacity(pointer r2.Vec, p Params) float64 {
	distance := r2.Norm(r2.Sub(pointer, pt.Pos))
	if distance < p.GlowRadius {
		return p.BaseOpacity + (1-distance/p.GlowRadius)*p.GlowOpacity
	}
	return p.BaseOpacity
}

// Draw fills the particle onto s
func (pt *Particle) Draw(s Surface, f *Field) {
	opacity := pt.Opacity(f.pointer, f.params)
	s.FillCircle(pt.Pos.X, pt.Pos.Y, pt.Radius, tint(f.params.Color, opacity))
}
