package systems

import (
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minHitOpacity keeps faded-out elements from catching the pointer.
const minHitOpacity = 0.05

// PointerHub is the demo's motion.PointerSource. Feed turns raw pointer samples into
// Move/Enter/Leave/Out/Over events for every subscriber.
type PointerHub struct {
	subs map[int]func(motion.PointerEvent)
	ids  []int
	next int

	x, y    float64
	inside  bool
	seen    bool
	hovered *components.Node
}

func NewPointerHub() *PointerHub {
	return &PointerHub{subs: make(map[int]func(motion.PointerEvent))}
}

func (h *PointerHub) Subscribe(fn func(motion.PointerEvent)) func() {
	id := h.next
	h.next++
	h.subs[id] = fn
	h.ids = append(h.ids, id)
	return func() {
		if _, ok := h.subs[id]; !ok {
			return
		}
		delete(h.subs, id)
		for i, v := range h.ids {
			if v == id {
				h.ids = append(h.ids[:i], h.ids[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (h *PointerHub) Subscribers() int { return len(h.subs) }

// Hovered returns the element currently under the pointer.
func (h *PointerHub) Hovered() *components.Node { return h.hovered }

func (h *PointerHub) emit(ev motion.PointerEvent) {
	for _, id := range append([]int(nil), h.ids...) {
		if fn, ok := h.subs[id]; ok {
			fn(ev)
		}
	}
}

// Feed reports one pointer sample. hit is the topmost interactive element under the pointer.
func (h *PointerHub) Feed(x, y float64, inside bool, hit *components.Node) {
	if !inside {
		if h.inside {
			h.setHovered(nil)
			h.emit(motion.PointerEvent{Kind: motion.PointerOut, X: x, Y: y})
		}
		h.inside = false
		return
	}
	if !h.inside && h.seen {
		h.emit(motion.PointerEvent{Kind: motion.PointerOver, X: x, Y: y})
	}
	h.inside = true
	if !h.seen || x != h.x || y != h.y {
		h.x, h.y = x, y
		h.seen = true
		h.emit(motion.PointerEvent{Kind: motion.PointerMove, X: x, Y: y})
	}
	h.setHovered(hit)
}

func (h *PointerHub) setHovered(n *components.Node) {
	if n == h.hovered {
		return
	}
	if h.hovered != nil {
		h.emit(motion.PointerEvent{Kind: motion.PointerLeave, X: h.x, Y: h.y, Element: h.hovered})
	}
	h.hovered = n
	if n != nil {
		h.emit(motion.PointerEvent{Kind: motion.PointerEnter, X: h.x, Y: h.y, Element: n})
	}
}

// UpdatePointer hit-tests the cursor against interactive elements, feeds the hub and
// dispatches clicks.
func UpdatePointer(hub *PointerHub) ecs.System {
	return func(ecs *ecs.ECS) {
		pageEntry, ok := components.Page.First(ecs.World)
		if !ok {
			return
		}
		page := components.Page.Get(pageEntry)

		cx, cy := ebiten.CursorPosition()
		x, y := float64(cx), float64(cy)
		inside := x >= 0 && y >= 0 && x < float64(cfg.C.Width) && y < float64(cfg.C.Height)

		var hit *components.InteractiveData
		if inside && y >= cfg.C.NavHeight {
			hit = HitTest(ecs, page.Scroll, x, y)
		}
		var node *components.Node
		if hit != nil {
			node = hit.Node
		}
		hub.Feed(x, y, inside, node)

		if hit != nil && hit.OnClick != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			hit.OnClick()
		}
	}
}

// HitTest syncs every interactive hit box to its node's screen rectangle and returns the topmost
// one containing (x, y), or nil.
func HitTest(ecs *ecs.ECS, scroll, x, y float64) *components.InteractiveData {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	components.Interactive.Each(ecs.World, func(e *donburi.Entry) {
		it := components.Interactive.Get(e)
		r := ScreenRect(it.Node, scroll)
		it.Object.X, it.Object.Y = r.X, r.Y
		it.Object.W, it.Object.H = r.W, r.H
		it.Object.Update()
	})

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvPointer)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvInteractive)
	if check == nil {
		return nil
	}

	var best *components.InteractiveData
	for _, o := range check.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		it := components.Interactive.Get(e)
		if it.Node.Opacity() < minHitOpacity {
			continue
		}
		// Broad phase only shares cells; confirm the point is inside.
		if x < o.X || y < o.Y || x >= o.X+o.W || y >= o.Y+o.H {
			continue
		}
		if best == nil || Above(it.Node, best.Node) {
			best = it
		}
	}
	return best
}

// Above reports whether a is drawn over b.
func Above(a, b *components.Node) bool {
	ra, rb := root(a), root(b)
	if ra.Fixed != rb.Fixed {
		return ra.Fixed
	}
	if a.Z() != b.Z() {
		return a.Z() > b.Z()
	}
	if da, db := depth(a), depth(b); da != db {
		return da > db
	}
	return a.Index > b.Index
}

// IsHoverTarget reports whether el is an interactive node that grows the cursor.
func IsHoverTarget(ecs *ecs.ECS) func(el any) bool {
	return func(el any) bool {
		n, ok := el.(*components.Node)
		if !ok {
			return false
		}
		found := false
		components.Interactive.Each(ecs.World, func(e *donburi.Entry) {
			it := components.Interactive.Get(e)
			if it.Node == n && it.Hover {
				found = true
			}
		})
		return found
	}
}

func root(n *components.Node) *components.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func depth(n *components.Node) int {
	d := 0
	for ; n.Parent != nil; n = n.Parent {
		d++
	}
	return d
}
