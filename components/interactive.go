package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// InteractiveData links a clickable node to its hit box in the screen-space resolv.Space.
type InteractiveData struct {
	Node    *Node
	Object  *resolv.Object
	OnClick func()
	// Hover marks elements that grow the cursor; plain clickables leave it alone.
	Hover bool
}

var Interactive = donburi.NewComponentType[InteractiveData]()

var Space = donburi.NewComponentType[resolv.Space]()
