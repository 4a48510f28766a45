package tags

import "github.com/yohamta/donburi"

var (
	Section     = donburi.NewTag().SetName("Section")
	Element     = donburi.NewTag().SetName("Element")
	Interactive = donburi.NewTag().SetName("Interactive")
	Cursor      = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for pointer hit testing
const (
	ResolvInteractive = "interactive"
	ResolvHover       = "hover"
	ResolvPointer     = "pointer"
)
