package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	boundsColor = color.RGBA{R: 255, G: 0, B: 255, A: 160}
	pinColor    = color.RGBA{R: 255, G: 180, B: 50, A: 200}
)

// UpdateDebug toggles the bounds overlay.
func UpdateDebug(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if components.Input.Get(entry).JustPressed(cfg.ActionToggleBounds) {
		cfg.Debug.ShowBounds = !cfg.Debug.ShowBounds
	}
}

// DrawDebug outlines layout boxes and prints engine counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBounds {
		return
	}
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	page := components.Page.Get(entry)
	m := components.Motion.Get(entry)

	components.Visual.Each(ecs.World, func(e *donburi.Entry) {
		n := components.Visual.Get(e).Node
		r, ok := n.Bounds()
		if !ok || n.Fixed {
			return
		}
		clr := boundsColor
		if n.Pin.Pinned {
			clr = pinColor
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y-page.Scroll), float32(r.W), float32(r.H), 1, clr, false)
	})

	msg := fmt.Sprintf("scroll %.0f/%.0f  links %d  active %d  reduced %v  fps %.0f",
		page.Scroll, page.MaxScroll(float64(cfg.C.Height)), m.Engine.Links(), m.Engine.Active(),
		m.Engine.ReducedMotion(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, 8, cfg.C.Height-20)
}
