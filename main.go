package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"landingfield/game"
)

func main() {
	config := game.DefaultConfig()

	flag.BoolVar(&config.ShowStats, "stats", config.ShowStats, "Show the debug overlay on start (F1 toggles)")
	flag.StringVar(&config.ProfileDir, "profile-dir", config.ProfileDir, "Capture CPU profiles into this directory on FPS drops")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Random seed (0 = time based)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.NewGame(ctx, config)
	if err != nil {
		log.Fatalf("Failed to create landing page: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)
	// The field paints a translucent overlay instead of clearing, leaving trails
	ebiten.SetScreenClearedEveryFrame(false)
	// One Update per displayed frame, so each fade pairs with one simulation step
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
