package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"landingfield/field"
	"landingfield/snapshot"
)

func main() {
	width := flag.Int("width", 1280, "Surface width in pixels")
	height := flag.Int("height", 800, "Surface height in pixels")
	frames := flag.Int("frames", 240, "Number of frames to simulate (0 = until interrupted)")
	every := flag.Int("every", 0, "Write a PNG every N frames (0 = only the last frame)")
	seed := flag.Int64("seed", 1, "Random seed")
	pointerX := flag.Float64("pointer-x", -1, "Pointer X (default: surface centre)")
	pointerY := flag.Float64("pointer-y", -1, "Pointer Y (default: surface centre)")
	fps := flag.Int("fps", 0, "Pace frames at this rate (0 = as fast as possible)")
	spatial := flag.Bool("spatial", false, "Use the grid index for connections")
	out := flag.String("out", "snapshots", "Output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	params := field.DefaultParams()
	params.SpatialIndex = *spatial

	f := field.NewField(params, rand.New(rand.NewSource(*seed)))
	f.Resize(*width, *height)
	px, py := *pointerX, *pointerY
	if px < 0 || py < 0 {
		px, py = float64(*width)/2, float64(*height)/2
	}
	f.SetPointer(px, py)

	surface, err := snapshot.NewCanvasSurface(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	surface.Clear(params.Background)

	var interval time.Duration
	if *fps > 0 {
		interval = time.Second / time.Duration(*fps)
	}
	loop, err := field.NewLoop(f, surface, interval)
	if err != nil {
		log.Fatalf("Failed to start loop: %v", err)
	}

	write := func(frame int) {
		path := filepath.Join(*out, fmt.Sprintf("frame-%05d.png", frame))
		if err := surface.WritePNG(path); err != nil {
			log.Printf("Failed to write %s: %v", path, err)
			return
		}
		log.Printf("Wrote %s", path)
	}
	if *every > 0 {
		loop.OnFrame = func(frame int) {
			if frame%*every == 0 {
				write(frame)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Simulating %dx%d with %d particles", *width, *height, len(f.Particles()))
	start := time.Now()
	err = loop.Run(ctx, *frames)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Loop stopped: %v", err)
	}

	if *every <= 0 || loop.Frames()%*every != 0 {
		write(loop.Frames())
	}

	stats := f.Stats()
	elapsed := time.Since(start)
	log.Printf("Rendered %d frames in %v (%.1f frames/s), %d lines in last frame",
		loop.Frames(), elapsed.Round(time.Millisecond), float64(loop.Frames())/elapsed.Seconds(), stats.Connections)
}
