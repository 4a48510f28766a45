package factory

import (
	"fmt"
	"strings"

	"github.com/automoto/scrollfx/archetypes"
	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/motion"
	"github.com/yohamta/donburi/ecs"
)

// wordPadding is the inset of split words inside their parent
const wordPadding = 16

// SplitWords replaces the text of n with one child node per word, wrapped to the width of n, so
// each word can be animated on its own. The words are returned in reading order.
func SplitWords(ecs *ecs.ECS, page *components.PageData, n *components.Node) []*components.Node {
	words := strings.Fields(n.Text)
	if len(words) == 0 {
		return nil
	}
	face := fonts.Lookup(n.Font)
	space, lineH := fonts.Measure(face, " ")
	maxW := n.Box.W - 2*wordPadding

	out := make([]*components.Node, 0, len(words))
	x, y := 0.0, 0.0
	next := len(page.Nodes)
	for i, w := range words {
		ww, _ := fonts.Measure(face, w)
		if x > 0 && x+ww > maxW {
			x = 0
			y += lineH * 1.3
		}
		word := components.NewNode(fmt.Sprintf("%s/word-%d", n.Name, i), motion.Rect{
			X: wordPadding + x,
			Y: wordPadding + y,
			W: ww,
			H: lineH,
		})
		word.Kind = n.Kind + "-word"
		word.Shape = components.ShapeText
		word.Text = w
		word.Font = n.Font
		word.Parent = n
		word.Index = next + i
		word.Order = i
		page.Nodes[word.Name] = word

		e := archetypes.Element.Spawn(ecs)
		components.Visual.SetValue(e, components.VisualData{Node: word})
		out = append(out, word)
		x += ww + space
	}
	n.Text = ""
	return out
}
