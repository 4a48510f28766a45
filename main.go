package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/scenes"
	"github.com/automoto/scrollfx/systems"
	"github.com/automoto/scrollfx/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	host   *scenes.Host
	nav    *ui.NavUI
	scene  Scene
	prefs  systems.Preferences
}

// ChangeScene switches to a new scene, tearing the old page down first
func (g *Game) ChangeScene(scene interface{}) {
	if old, ok := g.scene.(*scenes.PageScene); ok {
		old.Unmount()
	}
	g.scene = scene.(Scene)
	if ps, ok := scene.(*scenes.PageScene); ok {
		g.nav.SetActive(ps.Route().ID)
		g.prefs.LastPage = ps.Route().Path
		g.save()
	}
}

func NewGame(prefs systems.Preferences) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
		prefs:  prefs,
	}

	flow := systems.NewFlowPinner()
	engine := motion.NewEngine(
		motion.WithPinner(flow),
		motion.WithViewport(float64(config.C.Height)),
		motion.WithDefaultEase(config.Motion.DefaultEase),
		motion.WithReducedMotion(prefs.ReducedMotion),
		motion.WithLogger(log.New(os.Stderr, "motion: ", log.LstdFlags)),
	)
	flow.SetEngine(engine)

	g.host = &scenes.Host{
		Changer: g,
		Engine:  engine,
		Flow:    flow,
		OnReducedMotion: func(on bool) {
			g.prefs.ReducedMotion = on
			g.save()
		},
	}
	g.nav = ui.NewNavUI(g.host.Navigate, func() {
		if ps, ok := g.scene.(*scenes.PageScene); ok {
			g.host.ToggleReducedMotion(ps.Route().ID)
		}
	})

	start := config.Pages.DefaultPage
	if r, ok := config.Pages.RouteByPath(prefs.LastPage); ok {
		start = r.ID
	}
	if config.Debug.StartPage != "" {
		r, ok := config.Pages.RouteByPath(config.Debug.StartPage)
		if !ok {
			log.Printf("Warning: Unknown page %q, opening %s", config.Debug.StartPage, config.Pages.Route(start).Path)
		} else {
			start = r.ID
		}
	}
	g.ChangeScene(scenes.New(g.host, start))

	return g
}

func (g *Game) save() {
	if config.Debug.NoSave {
		return
	}
	if err := systems.SavePreferences(&g.prefs); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
	}
}

func (g *Game) Update() error {
	g.nav.Update()
	g.scene.Update()
	g.nav.SetStatus(g.status())
	return nil
}

func (g *Game) status() string {
	e := g.host.Engine
	motionLabel := "motion on"
	if e.ReducedMotion() {
		motionLabel = "reduced motion"
	}
	return fmt.Sprintf("%s  |  %d links  %d active", motionLabel, e.Links(), e.Active())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	g.nav.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.ReducedMotion, "reduced-motion", false, "Start with reduced motion")
	flag.StringVar(&config.Debug.StartPage, "page", "", "Route to open first, e.g. /gallery")
	flag.BoolVar(&config.Debug.ShowBounds, "bounds", false, "Outline layout boxes")
	flag.BoolVar(&config.Debug.NoSave, "no-save", false, "Do not load or save preferences")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	if config.Cursor.Enabled {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	// Initialize persistence and load saved preferences
	var prefs systems.Preferences
	if !config.Debug.NoSave {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
			prefs = *saved
		}
	}
	if config.Debug.ReducedMotion {
		prefs.ReducedMotion = true
	}

	if err := ebiten.RunGame(NewGame(prefs)); err != nil {
		log.Fatal(err)
	}
}
