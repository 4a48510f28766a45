package components

import (
	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi"
)

// InputData holds the current and previous frame's action states
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Wheel    float64
}

// Pressed reports whether action is held this frame.
func (i *InputData) Pressed(a cfg.ActionID) bool { return i.Current[a] }

// JustPressed reports whether action went down this frame.
func (i *InputData) JustPressed(a cfg.ActionID) bool { return i.Current[a] && !i.Previous[a] }

var Input = donburi.NewComponentType[InputData]()
