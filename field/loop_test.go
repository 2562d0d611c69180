package field

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewLoopRequiresSurface(t *testing.T) {
	if _, err := NewLoop(newTestField(1), nil, 0); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Expected ErrNoSurface, got %v", err)
	}
	var rec *Recorder
	if _, err := NewLoop(newTestField(1), rec, 0); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Expected ErrNoSurface for a nil *Recorder, got %v", err)
	}
	if _, err := NewLoop(nil, &Recorder{}, 0); !errors.Is(err, ErrNoField) {
		t.Errorf("Expected ErrNoField, got %v", err)
	}
}

func TestLoopRunsBoundedFrames(t *testing.T) {
	f := newTestField(1)
	f.Resize(800, 600)
	rec := &Recorder{}

	loop, err := NewLoop(f, rec, 0)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	seen := 0
	loop.OnFrame = func(frame int) { seen = frame }

	if err := loop.Run(context.Background(), 5); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if loop.Frames() != 5 || seen != 5 {
		t.Errorf("Expected 5 frames, loop counted %d, hook saw %d", loop.Frames(), seen)
	}
	if got := rec.Count(OpFillRect); got != 5 {
		t.Errorf("Expected one overlay per frame, got %d", got)
	}
	if got := rec.Count(OpFillCircle); got != 5*60 {
		t.Errorf("Expected %d particle draws, got %d", 5*60, got)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	f := newTestField(1)
	f.Resize(200, 200)

	loop, err := NewLoop(f, &Recorder{}, 0)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loop.OnFrame = func(frame int) {
		if frame == 3 {
			cancel()
		}
	}

	err = loop.Run(ctx, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if loop.Frames() != 3 {
		t.Errorf("Expected loop to stop after 3 frames, ran %d", loop.Frames())
	}
}

func TestLoopCancelledBeforeStart(t *testing.T) {
	loop, err := NewLoop(newTestField(1), &Recorder{}, 0)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := loop.Run(ctx, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if loop.Frames() != 0 {
		t.Errorf("Expected no frames, got %d", loop.Frames())
	}
}

func TestLoopPacedByInterval(t *testing.T) {
	f := newTestField(1)
	f.Resize(100, 100)
	loop, err := NewLoop(f, &Recorder{}, 5*time.Millisecond)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	start := time.Now()
	if err := loop.Run(context.Background(), 4); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Expected at least 3 intervals between 4 frames, took %v", elapsed)
	}
}
