package components

import (
	"github.com/automoto/scrollfx/motion"
	"github.com/yohamta/donburi"
)

type CursorData struct {
	Dot      *Node
	Ring     *Node
	Follower *motion.Attachment
	// Hidden is set while the pointer is outside the window.
	Hidden bool
}

var Cursor = donburi.NewComponentType[CursorData]()
