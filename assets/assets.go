package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:pages
	pageFS embed.FS
)

// Object group names understood by the loader
const (
	GroupSections = "sections"
	GroupElements = "elements"
	GroupOverlay  = "overlay"
)

// Layout is a page description parsed from a TMX file
type Layout struct {
	Name   string
	Width  float64
	Height float64

	Sections []Item
	Elements []Item
	Overlay  []Item
}

// Item is one positioned object from a layout. X and Y are document coordinates.
type Item struct {
	Name       string
	Kind       string
	X, Y, W, H float64

	// Parent names the enclosing section or element. Elements without one are assigned the
	// section containing their top edge.
	Parent string
	Shape  string
	Text   string
	Color  string
	Font   string
	Order  int

	Interactive bool
	Hover       bool
}

// MustLoadPage loads an embedded layout, panicking on malformed files.
func MustLoadPage(path string) *Layout {
	l, err := LoadLayout(pageFS, path)
	if err != nil {
		panic(err)
	}
	return l
}

// LoadLayout parses a TMX page layout. It takes an fs.FS so tests and tools can pass
// os.DirFS or an in-memory fstest.MapFS.
func LoadLayout(fsys fs.FS, path string) (*Layout, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	layout := &Layout{
		Name:   path,
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		var dst *[]Item
		switch og.Name {
		case GroupSections:
			dst = &layout.Sections
		case GroupElements:
			dst = &layout.Elements
		case GroupOverlay:
			dst = &layout.Overlay
		default:
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "" {
				return nil, fmt.Errorf("%s: object %d in %q has no name", path, o.ID, og.Name)
			}
			*dst = append(*dst, Item{
				Name:        o.Name,
				Kind:        o.Properties.GetString("kind"),
				X:           o.X,
				Y:           o.Y,
				W:           o.Width,
				H:           o.Height,
				Parent:      o.Properties.GetString("parent"),
				Shape:       o.Properties.GetString("shape"),
				Text:        o.Properties.GetString("text"),
				Color:       o.Properties.GetString("color"),
				Font:        o.Properties.GetString("font"),
				Order:       o.Properties.GetInt("order"),
				Interactive: o.Properties.GetBool("interactive"),
				Hover:       o.Properties.GetBool("hover"),
			})
		}
	}

	if len(layout.Sections) == 0 {
		return nil, fmt.Errorf("%s: no %q object group", path, GroupSections)
	}

	// Sections in document order
	sort.SliceStable(layout.Sections, func(i, j int) bool {
		return layout.Sections[i].Y < layout.Sections[j].Y
	})

	if err := layout.assignParents(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// assignParents fills in the enclosing section of elements that do not name one.
func (l *Layout) assignParents() error {
	names := make(map[string]bool, len(l.Sections))
	for _, s := range l.Sections {
		if names[s.Name] {
			return fmt.Errorf("duplicate section %q", s.Name)
		}
		names[s.Name] = true
	}
	for _, el := range l.Elements {
		if names[el.Name] {
			return fmt.Errorf("duplicate element %q", el.Name)
		}
		names[el.Name] = true
	}
	for i := range l.Elements {
		el := &l.Elements[i]
		if el.Parent != "" {
			if !names[el.Parent] {
				return fmt.Errorf("element %q: unknown parent %q", el.Name, el.Parent)
			}
			continue
		}
		for _, s := range l.Sections {
			if el.Y >= s.Y && el.Y < s.Y+s.H {
				el.Parent = s.Name
				break
			}
		}
		if el.Parent == "" {
			return fmt.Errorf("element %q at y=%v is outside every section", el.Name, el.Y)
		}
	}
	return nil
}

// Section returns the section item named name.
func (l *Layout) Section(name string) (Item, bool) {
	for _, s := range l.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Item{}, false
}
