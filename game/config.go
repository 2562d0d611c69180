package game

import (
	"landingfield/field"
	"landingfield/fx"
)

// Config holds the landing page configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// Name is the text typed out in the middle of the page
	Name string

	// Links are the navigation boxes under the name; Bounds are computed on resize
	Links []fx.Link

	// LinkWidth, LinkHeight and LinkGap size the link row
	LinkWidth  int
	LinkHeight int
	LinkGap    int

	// Field tunes the particle simulation
	Field field.Params

	// Seed feeds the random sources; 0 picks a time based seed
	Seed int64

	// ShowStats starts with the debug overlay visible (F1 toggles)
	ShowStats bool

	// ProfileDir enables FPS drop profiling into this directory when set
	ProfileDir string

	// FPSDropThreshold is the FPS below which a profile is captured
	FPSDropThreshold float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 800,
		Title:        "Usef Usefi",
		Name:         "Usef Usefi",
		Links: []fx.Link{
			{Label: "GitHub", URL: "https://github.com", Icon: "github"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com", Icon: "linkedin"},
			{Label: "Email", URL: "mailto:", Icon: "mail"},
		},
		LinkWidth:        140,
		LinkHeight:       40,
		LinkGap:          24,
		Field:            field.DefaultParams(),
		FPSDropThreshold: 45.0,
	}
}
