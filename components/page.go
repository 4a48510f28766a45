package components

import (
	"sort"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/yohamta/donburi"
)

// PageData is the scrollable document of the current scene
type PageData struct {
	Route cfg.Route

	// Roots are the top-level sections in layout order.
	Roots []*Node
	Nodes map[string]*Node

	// LayoutHeight is the document height before pin spacers.
	LayoutHeight float64
	Height       float64
	Scroll       float64
	// Locked stops wheel and key scrolling, e.g. while a modal is open.
	Locked bool
}

// Node looks a node up by its layout name.
func (p *PageData) Node(name string) (*Node, bool) {
	n, ok := p.Nodes[name]
	return n, ok
}

// Kind returns every node of the given kind in document order.
func (p *PageData) Kind(kind string) []*Node {
	var out []*Node
	for _, n := range p.ordered() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Children returns the direct children of parent in document order.
func (p *PageData) Children(parent *Node) []*Node {
	var out []*Node
	for _, n := range p.ordered() {
		if n.Parent == parent {
			out = append(out, n)
		}
	}
	return out
}

func (p *PageData) ordered() []*Node {
	out := make([]*Node, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := out[i].Bounds()
		b, _ := out[j].Bounds()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Relayout pushes every root below a pinned section down by that section's spacer. It reports
// whether any root moved.
func (p *PageData) Relayout() bool {
	sort.SliceStable(p.Roots, func(i, j int) bool { return p.Roots[i].Box.Y < p.Roots[j].Box.Y })
	moved := false
	flow := 0.0
	for _, r := range p.Roots {
		if r.Flow != flow {
			r.Flow = flow
			moved = true
		}
		flow += r.Pin.Spacer
	}
	p.Height = p.LayoutHeight + flow
	return moved
}

// MaxScroll is the furthest the page can scroll for a viewport of height vh.
func (p *PageData) MaxScroll(vh float64) float64 {
	if p.Height <= vh {
		return 0
	}
	return p.Height - vh
}

var Page = donburi.NewComponentType[PageData]()
