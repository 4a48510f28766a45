package factory

import (
	"math"
	"testing"

	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newPage(t *testing.T, path string) (*ecs.ECS, *components.PageData) {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	layout := assets.MustLoadPage(path)
	route, _ := cfg.Pages.RouteByPath("/projects")
	entry, err := CreatePage(w, layout, route, components.MotionData{Engine: motion.NewEngine(), Scope: &motion.Scope{}})
	if err != nil {
		t.Fatalf("CreatePage(%s): %v", path, err)
	}
	return w, components.Page.Get(entry)
}

func TestCreatePageBuildsTree(t *testing.T) {
	w, page := newPage(t, "pages/projects.tmx")

	if len(page.Roots) != 3 {
		t.Errorf("Expected 3 flow roots, got %d", len(page.Roots))
	}
	if page.Height != 1800 {
		t.Errorf("Expected page height 1800, got %v", page.Height)
	}

	card, ok := page.Node("project-2")
	if !ok {
		t.Fatal("Expected project-2")
	}
	if card.Parent == nil || card.Parent.Name != "grid" {
		t.Fatalf("Expected project-2 inside grid, got %v", card.Parent)
	}
	if card.Box.Y != 60 {
		t.Errorf("Expected parent-relative y=60, got %v", card.Box.Y)
	}
	if r, _ := card.Bounds(); r.Y != 460 || r.X != 490 {
		t.Errorf("Expected document bounds at (490, 460), got (%v, %v)", r.X, r.Y)
	}
	if card.Order != 1 {
		t.Errorf("Expected order 1, got %d", card.Order)
	}

	frame, _ := page.Node("modal-frame")
	overlay, _ := page.Node("modal-overlay")
	if !overlay.Fixed || frame.Fixed || frame.Parent == nil || !frame.Parent.Fixed {
		t.Errorf("Expected the overlay group to hang off fixed roots")
	}

	interactive := 0
	components.Interactive.Each(w.World, func(e *donburi.Entry) {
		it := components.Interactive.Get(e)
		interactive++
		if it.Object == nil || !it.Object.HasTags(tags.ResolvInteractive) {
			t.Errorf("Expected %s to have an interactive hit box", it.Node.Name)
		}
		if it.Hover != it.Object.HasTags(tags.ResolvHover) {
			t.Errorf("Expected hover tag on %s to match its hover flag", it.Node.Name)
		}
	})
	// Six cards plus overlay, panel and close button.
	if interactive != 9 {
		t.Errorf("Expected 9 interactive nodes, got %d", interactive)
	}

	clicked := false
	if !OnClick(w, "project-1", func() { clicked = true }) {
		t.Fatal("Expected OnClick to find project-1")
	}
	if OnClick(w, "projects-title", func() {}) {
		t.Errorf("Expected OnClick to ignore non-interactive nodes")
	}
	components.Interactive.Each(w.World, func(e *donburi.Entry) {
		if it := components.Interactive.Get(e); it.Node.Name == "project-1" && it.OnClick != nil {
			it.OnClick()
		}
	})
	if !clicked {
		t.Errorf("Expected the click handler to be attached")
	}
}

func TestNewNodeRejectsBadItems(t *testing.T) {
	if _, err := NewNode(assets.Item{Name: "x", Shape: "hexagon"}); err == nil {
		t.Errorf("Expected unknown shape to fail")
	}
	if _, err := NewNode(assets.Item{Name: "x", Shape: "rect", Color: "not-a-colour"}); err == nil {
		t.Errorf("Expected bad colour to fail")
	}
	n, err := NewNode(assets.Item{Name: "x", Shape: "circle", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	if n.Shape != components.ShapeCircle || n.Fill.R != 255 || n.Fill.G != 0 {
		t.Errorf("Unexpected node %+v", n)
	}
}

func TestSplitWordsWrapsInsideParent(t *testing.T) {
	fonts.LoadDefaults()
	w, page := newPage(t, "pages/projects.tmx")
	slide := components.NewNode("quote", motion.Rect{W: 200, H: 200})
	slide.Text = "one two three four five six seven eight"
	slide.Kind = "slide"
	page.Nodes[slide.Name] = slide

	words := SplitWords(w, page, slide)
	if len(words) != 8 {
		t.Fatalf("Expected 8 words, got %d", len(words))
	}
	if slide.Text != "" {
		t.Errorf("Expected the parent text to be cleared")
	}
	lines := map[float64]bool{}
	for i, word := range words {
		if word.Parent != slide || word.Shape != components.ShapeText || word.Kind != "slide-word" {
			t.Errorf("Unexpected word node %+v", word)
		}
		if word.Box.X+word.Box.W > slide.Box.W {
			t.Errorf("Word %d overflows its parent: %v", i, word.Box)
		}
		lines[word.Box.Y] = true
	}
	if len(lines) < 2 {
		t.Errorf("Expected the words to wrap onto several lines")
	}
	if SplitWords(w, page, slide) != nil {
		t.Errorf("Expected nothing to split once the text is gone")
	}
}

type fakeSource struct {
	fn func(motion.PointerEvent)
}

func (s *fakeSource) Subscribe(fn func(motion.PointerEvent)) func() {
	s.fn = fn
	return func() { s.fn = nil }
}

func TestCreateCursorFollowsAndDetaches(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	e := motion.NewEngine()
	scope := &motion.Scope{}
	src := &fakeSource{}

	entry, err := CreateCursor(w, e, scope, src, func(any) bool { return false })
	if err != nil {
		t.Fatalf("CreateCursor: %v", err)
	}
	c := components.Cursor.Get(entry)
	if !c.Dot.Fixed || !c.Ring.Fixed {
		t.Errorf("Expected cursor nodes in screen space")
	}
	if src.fn == nil {
		t.Fatal("Expected the follower to subscribe")
	}

	src.fn(motion.PointerEvent{Kind: motion.PointerMove, X: 300, Y: 200})
	for i := 0; i < 120; i++ {
		e.Tick(1.0 / 60)
	}
	if x, y := c.Dot.Origin(0); math.Abs(x-300) > 1e-6 || math.Abs(y-200) > 1e-6 {
		t.Errorf("Expected dot at (300, 200), got (%v, %v)", x, y)
	}

	scope.Kill()
	if src.fn != nil {
		t.Errorf("Expected scope kill to unsubscribe the cursor")
	}
}
