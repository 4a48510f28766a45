package components

import (
	"github.com/automoto/scrollfx/motion"
	"github.com/yohamta/donburi"
)

// MotionData gives systems access to the shared engine and the scene's kill scope.
type MotionData struct {
	Engine *motion.Engine
	Scope  *motion.Scope
}

var Motion = donburi.NewComponentType[MotionData]()
