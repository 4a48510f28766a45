package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recorded struct {
	kind motion.PointerKind
	el   any
}

func record(h *PointerHub) *[]recorded {
	var got []recorded
	h.Subscribe(func(ev motion.PointerEvent) {
		got = append(got, recorded{ev.Kind, ev.Element})
	})
	return &got
}

func TestPointerHubEventSequence(t *testing.T) {
	h := NewPointerHub()
	got := record(h)
	card := components.NewNode("card", motion.Rect{W: 100, H: 100})

	h.Feed(10, 10, true, nil)
	h.Feed(10, 10, true, nil) // no movement, no event
	h.Feed(20, 20, true, card)
	h.Feed(30, 30, true, card)
	h.Feed(-1, 30, false, nil)
	h.Feed(5, 5, true, nil)

	want := []recorded{
		{motion.PointerMove, nil},
		{motion.PointerMove, nil},
		{motion.PointerEnter, card},
		{motion.PointerMove, nil},
		{motion.PointerLeave, card},
		{motion.PointerOut, nil},
		{motion.PointerOver, nil},
		{motion.PointerMove, nil},
	}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("Expected events %v, got %v", want, *got)
	}
	if h.Hovered() != nil {
		t.Errorf("Expected nothing hovered after re-entering over empty space")
	}
}

func TestPointerHubUnsubscribeIsIdempotent(t *testing.T) {
	h := NewPointerHub()
	calls := 0
	unsub := h.Subscribe(func(motion.PointerEvent) { calls++ })
	other := h.Subscribe(func(motion.PointerEvent) {})

	h.Feed(1, 1, true, nil)
	unsub()
	unsub()
	h.Feed(2, 2, true, nil)

	if calls != 1 {
		t.Errorf("Expected 1 delivery before unsubscribe, got %d", calls)
	}
	if n := h.Subscribers(); n != 1 {
		t.Errorf("Expected 1 subscriber left, got %d", n)
	}
	other()
	if n := h.Subscribers(); n != 0 {
		t.Errorf("Expected no subscribers, got %d", n)
	}
}

func TestAbove(t *testing.T) {
	sec := components.NewNode("sec", motion.Rect{})
	child := components.NewNode("child", motion.Rect{})
	child.Parent = sec
	child.Index = 1
	sibling := components.NewNode("sibling", motion.Rect{})
	sibling.Parent = sec
	sibling.Index = 2
	overlay := components.NewNode("overlay", motion.Rect{})
	overlay.Fixed = true

	if !Above(child, sec) {
		t.Errorf("Expected child over its section")
	}
	if !Above(sibling, child) {
		t.Errorf("Expected later sibling on top")
	}
	child.Set(motion.PropZIndex, motion.Num(2))
	if !Above(child, sibling) {
		t.Errorf("Expected higher z on top")
	}
	if !Above(overlay, child) {
		t.Errorf("Expected fixed overlay over page content")
	}
}

func newTestPage(t *testing.T, layout *assets.Layout) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	e := motion.NewEngine()
	if _, err := factory.CreatePage(w, layout, cfg.Route{Path: "/test"}, components.MotionData{Engine: e, Scope: &motion.Scope{}}); err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	return w
}

func TestHitTestPicksTopmostVisible(t *testing.T) {
	layout := &assets.Layout{
		Sections: []assets.Item{{Name: "grid", Y: 0, W: 1280, H: 720, Shape: "none"}},
		Elements: []assets.Item{
			{Name: "back", Parent: "grid", X: 100, Y: 100, W: 300, H: 300, Shape: "rect", Interactive: true},
			{Name: "front", Parent: "grid", X: 200, Y: 200, W: 300, H: 300, Shape: "rect", Interactive: true, Hover: true},
		},
		Overlay: []assets.Item{
			{Name: "veil", X: 0, Y: 0, W: 1280, H: 720, Shape: "rect", Interactive: true},
		},
	}
	w := newTestPage(t, layout)
	entry, ok := components.Page.First(w.World)
	if !ok {
		t.Fatal("Expected a page entity")
	}
	page := components.Page.Get(entry)
	veil, _ := page.Node("veil")
	veil.Set(motion.PropOpacity, motion.Num(0))

	tests := []struct {
		name   string
		x, y   float64
		scroll float64
		want   string
	}{
		{"Only back", 150, 150, 0, "back"},
		{"Overlap goes to later element", 250, 250, 0, "front"},
		{"Empty space", 700, 600, 0, ""},
		{"Scroll moves boxes", 150, 50, 50, "back"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitTest(w, tt.scroll, tt.x, tt.y)
			got := ""
			if hit != nil {
				got = hit.Node.Name
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	veil.Set(motion.PropOpacity, motion.Num(1))
	if hit := HitTest(w, 0, 250, 250); hit == nil || hit.Node.Name != "veil" {
		t.Errorf("Expected visible overlay to take the hit")
	}

	front, _ := page.Node("front")
	hover := IsHoverTarget(w)
	if !hover(front) {
		t.Errorf("Expected front to be a hover target")
	}
	if hover(veil) || hover("not a node") {
		t.Errorf("Expected only hover-tagged nodes to be hover targets")
	}
}
