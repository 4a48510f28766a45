package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general display configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int

	// WheelStep converts one wheel notch into document pixels
	WheelStep float64
	// KeyStep is the scroll distance for arrow / page keys
	KeyStep  float64
	PageStep float64
	// NavHeight is the strip at the top reserved for the navigation bar
	NavHeight float64
}

// MotionConfig contains engine defaults shared by every page
type MotionConfig struct {
	DefaultEase string

	IntroDuration float64
	IntroStagger  float64
	IntroRise     float64

	ParallaxDistance  float64
	ParallaxSmoothing float64

	CardDelayStep float64

	PhotoStackDistance float64
	PhotoStackPairSize int
	PhotoStackStagger  float64
}

// RevealConfig contains the "reveal up" entrance defaults
type RevealConfig struct {
	Threshold float64
	Duration  float64
	Distance  float64
	Ease      string
	Stagger   float64
}

// CursorConfig contains the pointer follower look
type CursorConfig struct {
	Enabled    bool
	DotRadius  float64
	RingRadius float64
	RingWidth  float64
	DotColor   string
	RingColor  color.RGBA
}

// PaletteConfig holds the page colours
type PaletteConfig struct {
	Background color.RGBA
	Surface    color.RGBA
	Card       color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Accent     color.RGBA
	Overlay    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ReducedMotion bool   // Force instant tweens
	StartPage     string // Route to open first, overrides the saved page
	ShowBounds    bool   // Outline element layout boxes
	NoSave        bool   // Skip loading and saving preferences
}

// Global configuration instances
var C *Config
var Motion MotionConfig
var Reveal RevealConfig
var Cursor CursorConfig
var Palette PaletteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Emerald      = color.RGBA{R: 16, G: 185, B: 129, A: 255}
	Green        = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Slate        = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	SlateLight   = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	Gray         = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

func init() {
	C = &Config{
		Title:     "scrollfx",
		Width:     1280,
		Height:    720,
		TPS:       60,
		WheelStep: 60,
		KeyStep:   40,
		PageStep:  600,
		NavHeight: 48,
	}

	Motion = MotionConfig{
		DefaultEase: "ease-out-cubic",

		IntroDuration: 0.8,
		IntroStagger:  0.12,
		IntroRise:     24,

		ParallaxDistance:  500,
		ParallaxSmoothing: 0.3,

		CardDelayStep: 0.05,

		PhotoStackDistance: 2000,
		PhotoStackPairSize: 2,
		PhotoStackStagger:  0.18,
	}

	Reveal = RevealConfig{
		Threshold: 0.85,
		Duration:  0.8,
		Distance:  40,
		Ease:      "power3.out",
		Stagger:   0.1,
	}

	Cursor = CursorConfig{
		Enabled:    true,
		DotRadius:  4,
		RingRadius: 18,
		RingWidth:  1.5,
		DotColor:   "rgba(34,197,94,1)",
		RingColor:  Emerald,
	}

	Palette = PaletteConfig{
		Background: Slate,
		Surface:    SlateLight,
		Card:       color.RGBA{R: 51, G: 65, B: 85, A: 255},
		Text:       White,
		Muted:      Gray,
		Accent:     Emerald,
		Overlay:    BlackOverlay,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
