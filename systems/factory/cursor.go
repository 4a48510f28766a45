package factory

import (
	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCursor spawns the dot and ring followers and attaches them to src. The attachment is
// detached when scope is killed.
func CreateCursor(ecs *ecs.ECS, e *motion.Engine, scope *motion.Scope, src motion.PointerSource, interactive func(any) bool) (*donburi.Entry, error) {
	dot := components.NewNode("cursor-dot", motion.Rect{})
	dot.Fixed = true
	ring := components.NewNode("cursor-ring", motion.Rect{})
	ring.Fixed = true

	fc := motion.DefaultFollowerConfig()
	fc.Dot, fc.Ring = dot, ring
	fc.Source = src
	fc.Interactive = interactive
	if c, err := motion.ParseColor(cfg.Cursor.DotColor); err == nil {
		fc.DotRestColor = motion.RGBA(c)
	}
	dot.Set(motion.PropColor, fc.DotRestColor)
	ring.Set(motion.PropColor, motion.RGBA(cfg.Cursor.RingColor))
	ring.Set(motion.PropScale, motion.Num(fc.RingRestScale))
	ring.Set(motion.PropOpacity, motion.Num(0))

	att, err := e.PointerFollower().Attach(fc)
	if err != nil {
		return nil, err
	}
	scope.Defer(att.Detach)

	entry := archetypes.Cursor.Spawn(ecs)
	components.Cursor.SetValue(entry, components.CursorData{Dot: dot, Ring: ring, Follower: att})
	return entry, nil
}
