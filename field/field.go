package field

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Field is the simulation context: surface size, particles and pointer.
// It is not safe for concurrent use; hosts drive it from a single loop.
type Field struct {
	params Params
	rng    *rand.Rand

	width  float64
	height float64

	particles []Particle
	pointer   r2.Vec

	grid        *grid
	connections []Connection

	frames uint64
}

// Connection is a pair of particles close enough to be joined by a line
type Connection struct {
	I, J     int
	Distance float64
}

// Stats is a snapshot of field counters for overlays and logs
type Stats struct {
	Frames      uint64
	Particles   int
	Connections int
	Width       int
	Height      int
}

// NewField creates an empty field; call Resize before the first frame
func NewField(params Params, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Field{
		params: params,
		rng:    rng,
	}
}

// Params returns the tuning in use
func (f *Field) Params() Params {
	return f.params
}

// Resize sets the surface size and replaces every particle.
// The new count is floor(width*height / AreaPerParticle).
func (f *Field) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	f.width = float64(width)
	f.height = float64(height)

	count := 0
	if f.params.AreaPerParticle > 0 {
		count = int(math.Floor(f.width * f.height / f.params.AreaPerParticle))
	}

	// Fresh slice so callers holding the old one never see it mutate
	f.particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, NewParticle(f.rng, f.width, f.height, f.params))
	}
	f.connections = f.connections[:0]
	if f.grid != nil {
		f.grid.reset(f.width, f.height)
	}
}

// Size returns the surface size in pixels
func (f *Field) Size() (int, int) {
	return int(f.width), int(f.height)
}

// Particles exposes the live particle slice
func (f *Field) Particles() []Particle {
	return f.particles
}

// SetPointer records the latest pointer position in surface coordinates
func (f *Field) SetPointer(x, y float64) {
	f.pointer = r2.Vec{X: x, Y: y}
}

// Pointer returns the latest pointer position
func (f *Field) Pointer() r2.Vec {
	return f.pointer
}

// Repulsion returns the outward force in [0, 1] for a pointer distance;
// zero at and beyond the repulsion radius.
func (f *Field) Repulsion(distance float64) float64 {
	r := f.params.RepulsionRadius
	if distance >= r || r <= 0 {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return (r - distance) / r
}

// LineOpacity returns the stroke opacity for a pair at the given distance;
// zero at and beyond the connection distance.
func (f *Field) LineOpacity(distance float64) float64 {
	limit := f.params.ConnectionDistance
	if distance >= limit {
		return 0
	}
	return (1 - distance/limit) * f.params.ConnectionOpacity
}

// Connections appends every pair (i < j) closer than the connection
// distance to dst, ordered by i then j.
//
// The pairwise scan is quadratic in particle count, which the area
// density rule keeps small; SpatialIndex buckets particles instead.
func (f *Field) Connections(dst []Connection) []Connection {
	if f.params.SpatialIndex {
		if f.grid == nil {
			f.grid = newGrid(f.params.ConnectionDistance)
			f.grid.reset(f.width, f.height)
		}
		return f.grid.connections(dst, f.particles)
	}

	limit := f.params.ConnectionDistance
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			distance := r2.Norm(r2.Sub(f.particles[i].Pos, f.particles[j].Pos))
			if distance < limit {
				dst = append(dst, Connection{I: i, J: j, Distance: distance})
			}
		}
	}
	return dst
}

// Frame runs one animation tick: fade overlay, update and draw each
// particle in turn, then draw connections.
func (f *Field) Frame(s Surface) {
	f.fade(s)
	for i := range f.particles {
		f.particles[i].Update(f)
		f.particles[i].Draw(s, f)
	}
	f.drawConnections(s)
	f.frames++
}

// Update advances every particle one frame without drawing. Together with
// Draw it splits Frame for hosts with separate tick and draw callbacks;
// the picture is the same since a particle's draw only reads its own state
// and the pointer.
func (f *Field) Update() {
	for i := range f.particles {
		f.particles[i].Update(f)
	}
	f.frames++
}

// Draw renders the current state without advancing it
func (f *Field) Draw(s Surface) {
	f.fade(s)
	for i := range f.particles {
		f.particles[i].Draw(s, f)
	}
	f.drawConnections(s)
}

// Stats returns the current counters
func (f *Field) Stats() Stats {
	return Stats{
		Frames:      f.frames,
		Particles:   len(f.particles),
		Connections: len(f.connections),
		Width:       int(f.width),
		Height:      int(f.height),
	}
}

func (f *Field) fade(s Surface) {
	s.FillRect(0, 0, f.width, f.height, tint(f.params.Background, f.params.TrailAlpha))
}

func (f *Field) drawConnections(s Surface) {
	f.connections = f.Connections(f.connections[:0])
	for _, c := range f.connections {
		a := f.particles[c.I].Pos
		b := f.particles[c.J].Pos
		clr := tint(f.params.Color, f.LineOpacity(c.Distance))
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.params.LineWidth, clr)
	}
}
