package components

import (
	"image/color"

	"github.com/automoto/scrollfx/motion"
	"github.com/yohamta/donburi"
)

// Shape selects how a node is drawn
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeRing
	ShapeText
	ShapeNone // layout only
)

// Node is one laid-out page element. It is the motion.Target the engine animates and the
// motion.Element scroll links measure.
type Node struct {
	*motion.Props

	Name string
	Kind string
	// Index is the layout order, used to break stacking ties.
	Index int
	// Order sequences nodes within a kind, e.g. intro and photo order.
	Order int
	Shape Shape
	Fill  color.RGBA
	Text  string
	Font  string

	// Box is in document coordinates for top-level nodes, relative to Parent otherwise.
	Box     motion.Rect
	Parent  *Node
	Mounted bool
	// Fixed roots are drawn in screen space and do not scroll.
	Fixed bool

	// Flow is the layout offset from spacers above the node; Pin is the last pin state applied.
	Flow float64
	Pin  motion.PinState
}

// NewNode creates a mounted node with identity transforms.
func NewNode(name string, box motion.Rect) *Node {
	return &Node{
		Props: motion.NewProps(map[string]motion.Value{
			motion.PropX:       motion.Num(0),
			motion.PropY:       motion.Num(0),
			motion.PropScale:   motion.Num(1),
			motion.PropRotate:  motion.Num(0),
			motion.PropOpacity: motion.Num(1),
		}),
		Name:    name,
		Box:     box,
		Mounted: true,
	}
}

// Bounds reports the layout box in document coordinates. Transforms and pins are ignored.
func (n *Node) Bounds() (motion.Rect, bool) {
	if !n.Mounted {
		return motion.Rect{}, false
	}
	r := n.Box
	if n.Parent != nil {
		p, ok := n.Parent.Bounds()
		if !ok {
			return motion.Rect{}, false
		}
		r.X += p.X
		r.Y += p.Y
	} else {
		r.Y += n.Flow
	}
	return r, true
}

// Origin returns the node's top-left corner on screen for the given scroll offset, with pin
// state and translation applied along the parent chain.
func (n *Node) Origin(scroll float64) (x, y float64) {
	if n.Parent != nil {
		px, py := n.Parent.Origin(scroll)
		x, y = px+n.Box.X, py+n.Box.Y
	} else {
		x = n.Box.X
		switch {
		case n.Fixed:
			y = n.Box.Y
		case n.Pin.Pinned:
			y = n.Pin.ViewportY
		default:
			y = n.Box.Y + n.Flow + n.Pin.FlowOffset - scroll
		}
	}
	return x + n.Number(motion.PropX), y + n.Number(motion.PropY)
}

// Opacity multiplies the node's opacity with its ancestors'.
func (n *Node) Opacity() float64 {
	o := n.Number(motion.PropOpacity)
	if n.Parent != nil {
		o *= n.Parent.Opacity()
	}
	return o
}

// Color returns the animated colour, or Fill when none was set.
func (n *Node) Color() color.RGBA {
	if v, ok := n.Get(motion.PropColor); ok && v.Kind == motion.KindColor {
		return v.C
	}
	return n.Fill
}

// Z returns the animated stacking order.
func (n *Node) Z() float64 { return n.Number(motion.PropZIndex) }

type VisualData struct {
	*Node
}

var Visual = donburi.NewComponentType[VisualData]()
