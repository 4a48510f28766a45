package systems

import (
	"math"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll turns wheel and key input into a clamped document scroll offset and reports it
// to the engine.
func UpdateScroll(ecs *ecs.ECS) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	page := components.Page.Get(entry)
	input := components.Input.Get(entry)
	m := components.Motion.Get(entry)

	if !page.Locked {
		page.Scroll += ScrollDelta(input, page.Scroll, page.MaxScroll(float64(cfg.C.Height)))
	}
	page.Scroll = ClampScroll(page.Scroll, page.MaxScroll(float64(cfg.C.Height)))
	m.Engine.Scroll(page.Scroll)
}

// ScrollDelta converts this frame's input into a scroll change. Wheel up is a negative wheel
// delta in document terms.
func ScrollDelta(input *components.InputData, scroll, max float64) float64 {
	d := -input.Wheel * cfg.C.WheelStep
	if input.Pressed(cfg.ActionScrollDown) {
		d += cfg.C.KeyStep
	}
	if input.Pressed(cfg.ActionScrollUp) {
		d -= cfg.C.KeyStep
	}
	if input.JustPressed(cfg.ActionPageDown) {
		d += cfg.C.PageStep
	}
	if input.JustPressed(cfg.ActionPageUp) {
		d -= cfg.C.PageStep
	}
	if input.JustPressed(cfg.ActionTop) {
		d = -scroll
	}
	if input.JustPressed(cfg.ActionBottom) {
		d = max - scroll
	}
	return d
}

// ClampScroll keeps y inside [0, max].
func ClampScroll(y, max float64) float64 {
	return math.Max(0, math.Min(max, y))
}
