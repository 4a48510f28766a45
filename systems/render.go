package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/fonts"
	"github.com/automoto/scrollfx/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whitePixel *ebiten.Image
	drawList   []*components.Node
)

// textPadding is the inset of labels inside filled shapes
const textPadding = 16

// ScreenRect returns the node's on-screen box with translation and scale applied. Scale is
// about the centre of the layout box.
func ScreenRect(n *components.Node, scroll float64) motion.Rect {
	x, y := n.Origin(scroll)
	s := n.Number(motion.PropScale)
	w, h := n.Box.W*s, n.Box.H*s
	return motion.Rect{
		X: x + (n.Box.W-w)/2,
		Y: y + (n.Box.H-h)/2,
		W: w,
		H: h,
	}
}

// DrawPage renders every visible node: flow content first, then fixed overlays, each group
// sorted by stacking order.
func DrawPage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	page := components.Page.Get(entry)

	drawList = drawList[:0]
	components.Visual.Each(ecs.World, func(e *donburi.Entry) {
		drawList = append(drawList, components.Visual.Get(e).Node)
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return Above(drawList[j], drawList[i])
	})

	vh := float64(screen.Bounds().Dy())
	for _, n := range drawList {
		drawNode(screen, n, page.Scroll, vh)
	}
}

func drawNode(screen *ebiten.Image, n *components.Node, scroll, vh float64) {
	alpha := n.Opacity()
	if alpha <= 0.01 || n.Shape == components.ShapeNone {
		return
	}
	r := ScreenRect(n, scroll)
	// Viewport culling
	if r.Y+r.H < 0 || r.Y > vh {
		return
	}

	fill := fade(n.Color(), alpha)
	switch n.Shape {
	case components.ShapeRect:
		drawRect(screen, r, n.Number(motion.PropRotate), fill)
	case components.ShapeCircle:
		rad := math.Min(r.W, r.H) / 2
		vector.DrawFilledCircle(screen, float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(rad), fill, true)
	case components.ShapeRing:
		rad := math.Min(r.W, r.H) / 2
		vector.StrokeCircle(screen, float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(rad), float32(cfg.Cursor.RingWidth), fill, true)
	}

	if n.Text != "" {
		drawLabel(screen, n, r, alpha)
	}
}

// drawRect draws a filled rectangle rotated by deg degrees around its centre.
func drawRect(screen *ebiten.Image, r motion.Rect, deg float64, clr color.RGBA) {
	if deg == 0 {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(r.W, r.H)
	drawOp.GeoM.Translate(-r.W/2, -r.H/2)
	drawOp.GeoM.Rotate(deg * math.Pi / 180)
	drawOp.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	drawOp.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(whitePixel, drawOp)
}

func drawLabel(screen *ebiten.Image, n *components.Node, r motion.Rect, alpha float64) {
	face := fonts.Lookup(n.Font)
	_, lineH := fonts.Measure(face, n.Text)
	x, y := r.X, r.Y+lineH
	if n.Shape != components.ShapeText {
		x += textPadding
		y = r.Y + r.H/2 + lineH/3
	}
	text.Draw(screen, n.Text, face.Get(), int(x), int(y), fade(cfg.Palette.Text, alpha))
}

// DrawCursor renders the pointer follower on the overlay layer.
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	if c.Dot == nil || c.Ring == nil {
		return
	}

	rx, ry := c.Ring.Origin(0)
	if a := c.Ring.Opacity(); a > 0.01 {
		rad := cfg.Cursor.RingRadius * c.Ring.Number(motion.PropScale)
		vector.StrokeCircle(screen, float32(rx), float32(ry), float32(rad), float32(cfg.Cursor.RingWidth), fade(c.Ring.Color(), a), true)
	}
	dx, dy := c.Dot.Origin(0)
	if a := c.Dot.Opacity(); a > 0.01 {
		rad := cfg.Cursor.DotRadius * c.Dot.Number(motion.PropScale)
		vector.DrawFilledCircle(screen, float32(dx), float32(dy), float32(rad), fade(c.Dot.Color(), a), true)
	}
}

// fade scales a straight-alpha colour by alpha and premultiplies it for ebiten.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha)) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
