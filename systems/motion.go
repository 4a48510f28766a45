package systems

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion advances the engine by one fixed frame. Must run after every system that
// reports scroll or pointer input.
func UpdateMotion(ecs *ecs.ECS) {
	entry, ok := components.Motion.First(ecs.World)
	if !ok {
		return
	}
	m := components.Motion.Get(entry)
	m.Engine.Tick(1 / float64(cfg.C.TPS))
}
