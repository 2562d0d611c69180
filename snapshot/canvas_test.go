package snapshot

import (
	"context"
	"errors"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"landingfield/field"
)

func TestNewCanvasSurfaceRejectsEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewCanvasSurface(size[0], size[1]); !errors.Is(err, ErrEmptySurface) {
			t.Errorf("NewCanvasSurface(%d, %d): expected ErrEmptySurface, got %v", size[0], size[1], err)
		}
	}
}

func near(got color.RGBA, want color.NRGBA) bool {
	d := func(x, y uint8) bool { return int(x)-int(y) >= -1 && int(x)-int(y) <= 1 }
	return d(got.R, want.R) && d(got.G, want.G) && d(got.B, want.B) && d(got.A, want.A)
}

func TestSurfaceDrawsColours(t *testing.T) {
	background := color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	accent := color.NRGBA{R: 99, G: 102, B: 241, A: 255}

	tests := []struct {
		name string
		draw func(s *CanvasSurface)
		x, y int
		want color.NRGBA
	}{
		{"opaque circle", func(s *CanvasSurface) { s.FillCircle(10, 10, 6, accent) }, 10, 10, accent},
		{"circle leaves outside untouched", func(s *CanvasSurface) { s.FillCircle(10, 10, 3, accent) }, 1, 1, background},
		{"translucent circle blends", func(s *CanvasSurface) {
			s.FillCircle(10, 10, 6, color.NRGBA{R: 99, G: 102, B: 241, A: 51})
		}, 10, 10, color.NRGBA{R: 28, G: 28, B: 56, A: 255}},
		{"stroke", func(s *CanvasSurface) { s.StrokeLine(2, 10, 18, 10, 4, accent) }, 10, 10, accent},
		{"fade rect", func(s *CanvasSurface) {
			s.FillRect(0, 0, 20, 20, color.NRGBA{R: 110, G: 110, B: 110, A: 128})
		}, 5, 5, color.NRGBA{R: 60, G: 60, B: 60, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewCanvasSurface(20, 20)
			if err != nil {
				t.Fatalf("NewCanvasSurface: %v", err)
			}
			s.Clear(background)
			tt.draw(s)
			if got := s.Image().RGBAAt(tt.x, tt.y); !near(got, tt.want) {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSurfaceManyColours(t *testing.T) {
	s, err := NewCanvasSurface(20, 20)
	if err != nil {
		t.Fatalf("NewCanvasSurface: %v", err)
	}
	s.Clear(color.NRGBA{A: 255})
	for a := 0; a < 256; a += 5 {
		c := color.NRGBA{R: 99, G: 102, B: 241, A: uint8(a)}
		s.FillCircle(10, 10, 4, c)
		s.StrokeLine(0, 0, 20, 20, 1, c)
	}
	if got := s.Image().RGBAAt(10, 10); got.B < 200 {
		t.Errorf("Expected accent colour after repeated fills, got %v", got)
	}
}

func TestClearFillsSurface(t *testing.T) {
	s, err := NewCanvasSurface(32, 24)
	if err != nil {
		t.Fatalf("NewCanvasSurface: %v", err)
	}
	s.Clear(color.NRGBA{R: 10, G: 10, B: 10, A: 255})

	img := s.Image()
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	got := img.RGBAAt(16, 12)
	if got.R != 10 || got.G != 10 || got.B != 10 || got.A != 255 {
		t.Errorf("Expected background pixel, got %v", got)
	}
}

func TestFieldSnapshotPNG(t *testing.T) {
	f := field.NewField(field.DefaultParams(), rand.New(rand.NewSource(1)))
	f.Resize(160, 100)
	f.SetPointer(80, 50)

	s, err := NewCanvasSurface(160, 100)
	if err != nil {
		t.Fatalf("NewCanvasSurface: %v", err)
	}
	s.Clear(f.Params().Background)

	loop, err := field.NewLoop(f, s, 0)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := loop.Run(context.Background(), 10); err != nil {
		t.Fatalf("Run: %v", err)
	}

	path := filepath.Join(t.TempDir(), "field.png")
	if err := s.WritePNG(path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 100 {
		t.Errorf("unexpected snapshot bounds %v", img.Bounds())
	}

	// Particles painted in the accent colour leave blue-dominant pixels
	lit := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 160; x++ {
			r, _, b, _ := img.At(x, y).RGBA()
			if b > r+0x1000 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected particle pixels in the snapshot, found only background")
	}
}
