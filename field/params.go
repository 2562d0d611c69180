package field

import "image/color"

// Params holds the tuning constants of a particle field
type Params struct {
	// AreaPerParticle is the surface area in px² allotted to each particle
	AreaPerParticle float64

	// MaxSpeed bounds each initial velocity component to [-MaxSpeed, MaxSpeed]
	MaxSpeed float64

	// MinRadius and RadiusSpread give the initial radius range [MinRadius, MinRadius+RadiusSpread)
	MinRadius    float64
	RadiusSpread float64

	// RepulsionRadius is the pointer distance below which particles are pushed away and grow
	RepulsionRadius float64

	// RepulsionStrength scales the outward velocity change per frame
	RepulsionStrength float64

	// Growth is the extra radius multiple reached at pointer distance 0
	Growth float64

	// Damping multiplies velocity every frame
	Damping float64

	// MinSpeed is the per-axis speed below which Jitter is applied
	MinSpeed float64

	// Jitter is the width of the random kick added to slow axes
	Jitter float64

	// GlowRadius is the pointer distance below which particles brighten
	GlowRadius  float64
	BaseOpacity float64
	GlowOpacity float64

	// ConnectionDistance is the pair distance below which a line is drawn
	ConnectionDistance float64
	ConnectionOpacity  float64
	LineWidth          float64

	// TrailAlpha is the opacity of the background overlay painted each frame
	TrailAlpha float64

	Color      color.NRGBA
	Background color.NRGBA

	// SpatialIndex switches the connection search from the pairwise scan to a grid
	SpatialIndex bool
}

// DefaultParams returns the landing page tuning
func DefaultParams() Params {
	return Params{
		AreaPerParticle:    8000,
		MaxSpeed:           0.25,
		MinRadius:          1,
		RadiusSpread:       2,
		RepulsionRadius:    150,
		RepulsionStrength:  0.1,
		Growth:             2,
		Damping:            0.99,
		MinSpeed:           0.1,
		Jitter:             0.05,
		GlowRadius:         200,
		BaseOpacity:        0.3,
		GlowOpacity:        0.7,
		ConnectionDistance: 120,
		ConnectionOpacity:  0.2,
		LineWidth:          1,
		TrailAlpha:         0.1,
		Color:              color.NRGBA{R: 99, G: 102, B: 241, A: 255},
		Background:         color.NRGBA{R: 10, G: 10, B: 10, A: 255},
	}
}

// tint returns c with its alpha replaced by opacity in [0, 1]
func tint(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(opacity*255 + 0.5)
	return c
}
