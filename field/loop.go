package field

import (
	"context"
	"errors"
	"reflect"
	"time"
)

var (
	// ErrNoSurface is returned when a loop is built without a drawing surface
	ErrNoSurface = errors.New("field: no drawing surface")

	// ErrNoField is returned when a loop is built without a field
	ErrNoField = errors.New("field: no field")
)

// Loop drives a field frame after frame until stopped
type Loop struct {
	field    *Field
	surface  Surface
	interval time.Duration
	frames   int

	// OnFrame, when set, runs after every completed frame
	OnFrame func(frame int)
}

// NewLoop binds a field to a surface. A zero interval runs frames back to back.
func NewLoop(f *Field, s Surface, interval time.Duration) (*Loop, error) {
	if f == nil {
		return nil, ErrNoField
	}
	if isNilSurface(s) {
		return nil, ErrNoSurface
	}
	return &Loop{
		field:    f,
		surface:  s,
		interval: interval,
	}, nil
}

// isNilSurface also catches a typed nil pointer stored in the interface
func isNilSurface(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Run renders frames until maxFrames have run or ctx is done.
// maxFrames <= 0 runs until cancellation. The stop signal is checked before
// every frame is scheduled; a cancelled run returns ctx.Err().
func (l *Loop) Run(ctx context.Context, maxFrames int) error {
	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for ran := 0; maxFrames <= 0 || ran < maxFrames; ran++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil && ran > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		l.field.Frame(l.surface)
		l.frames++
		if l.OnFrame != nil {
			l.OnFrame(l.frames)
		}
	}
	return nil
}

// Frames returns how many frames this loop has rendered
func (l *Loop) Frames() int {
	return l.frames
}
