package factory

import (
	"fmt"
	"math"

	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitCell is the resolv cell size used for pointer hit testing
const hitCell = 32

// CreatePage spawns the page entity, the hit-test space and one entity per layout item.
func CreatePage(ecs *ecs.ECS, layout *assets.Layout, route cfg.Route, m components.MotionData) (*donburi.Entry, error) {
	entry := archetypes.Page.Spawn(ecs)
	components.Motion.SetValue(entry, m)

	page := components.Page.Get(entry)
	page.Route = route
	page.Nodes = make(map[string]*components.Node)

	spaceEntry := CreateSpace(ecs, cfg.C.Width, cfg.C.Height, hitCell, hitCell)
	space := components.Space.Get(spaceEntry)

	items := make(map[string]assets.Item)
	index := 0
	add := func(it assets.Item, fixed bool) error {
		if _, dup := page.Nodes[it.Name]; dup {
			return fmt.Errorf("duplicate layout item %q", it.Name)
		}
		n, err := NewNode(it)
		if err != nil {
			return err
		}
		n.Index = index
		n.Fixed = fixed
		index++
		page.Nodes[it.Name] = n
		items[it.Name] = it
		return nil
	}

	for _, s := range layout.Sections {
		if err := add(s, false); err != nil {
			return nil, err
		}
		page.LayoutHeight = math.Max(page.LayoutHeight, s.Y+s.H)
	}
	for _, el := range layout.Elements {
		if err := add(el, false); err != nil {
			return nil, err
		}
	}
	for _, ov := range layout.Overlay {
		if err := add(ov, true); err != nil {
			return nil, err
		}
	}

	// Link parents now that every node exists. Child boxes become parent-relative.
	for name, n := range page.Nodes {
		it := items[name]
		if it.Parent == "" {
			if !n.Fixed {
				page.Roots = append(page.Roots, n)
			}
			continue
		}
		p, ok := page.Nodes[it.Parent]
		if !ok {
			return nil, fmt.Errorf("item %q: unknown parent %q", name, it.Parent)
		}
		pit := items[it.Parent]
		n.Parent = p
		n.Box.X -= pit.X
		n.Box.Y -= pit.Y
	}
	page.Relayout()

	for name, n := range page.Nodes {
		it := items[name]
		switch {
		case it.Interactive:
			e := archetypes.Interactive.Spawn(ecs)
			components.Visual.SetValue(e, components.VisualData{Node: n})
			resolvTags := []string{tags.ResolvInteractive}
			if it.Hover {
				resolvTags = append(resolvTags, tags.ResolvHover)
			}
			obj := resolv.NewObject(0, 0, n.Box.W, n.Box.H, resolvTags...)
			obj.Data = e
			space.Add(obj)
			components.Interactive.SetValue(e, components.InteractiveData{Node: n, Object: obj, Hover: it.Hover})
		case n.Parent == nil && !n.Fixed:
			e := archetypes.Section.Spawn(ecs)
			components.Visual.SetValue(e, components.VisualData{Node: n})
		default:
			e := archetypes.Element.Spawn(ecs)
			components.Visual.SetValue(e, components.VisualData{Node: n})
		}
	}
	return entry, nil
}

// NewNode converts a layout item into a node with document-space box.
func NewNode(it assets.Item) (*components.Node, error) {
	n := components.NewNode(it.Name, motion.Rect{X: it.X, Y: it.Y, W: it.W, H: it.H})
	n.Kind = it.Kind
	n.Order = it.Order
	n.Text = it.Text
	n.Font = it.Font

	switch it.Shape {
	case "rect":
		n.Shape = components.ShapeRect
		n.Fill = cfg.Palette.Card
	case "circle":
		n.Shape = components.ShapeCircle
		n.Fill = cfg.Palette.Accent
	case "ring":
		n.Shape = components.ShapeRing
		n.Fill = cfg.Palette.Accent
	case "text":
		n.Shape = components.ShapeText
	case "", "none":
		n.Shape = components.ShapeNone
	default:
		return nil, fmt.Errorf("item %q: unknown shape %q", it.Name, it.Shape)
	}
	if it.Color != "" {
		c, err := motion.ParseColor(it.Color)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Name, err)
		}
		n.Fill = c
	}
	return n, nil
}

// OnClick attaches fn to the interactive node called name. It reports false when there is none.
func OnClick(ecs *ecs.ECS, name string, fn func()) bool {
	found := false
	components.Interactive.Each(ecs.World, func(e *donburi.Entry) {
		it := components.Interactive.Get(e)
		if it.Node.Name == name {
			it.OnClick = fn
			found = true
		}
	})
	return found
}
