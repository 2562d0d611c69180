package field

import "image/color"

// Surface is the 2D drawing context a field renders onto
type Surface interface {
	// FillRect fills an axis-aligned rectangle
	FillRect(x, y, width, height float64, clr color.Color)

	// FillCircle fills a circle centred at (cx, cy)
	FillCircle(cx, cy, radius float64, clr color.Color)

	// StrokeLine draws a straight segment
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpFillRect OpKind = iota
	OpFillCircle
	OpStrokeLine
)

// Op is a single recorded draw call. Unused coordinates are zero.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
	Height float64
	Radius float64
	Color  color.NRGBA
}

// Recorder is a Surface that keeps every draw call in memory
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, width, height float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X0: x, Y0: y, Width: width, Height: height, Color: nrgba(clr)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X0: cx, Y0: cy, Radius: radius, Color: nrgba(clr)})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: nrgba(clr)})
}

// Count returns how many recorded ops are of the given kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func nrgba(clr color.Color) color.NRGBA {
	if c, ok := clr.(color.NRGBA); ok {
		return c
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}
