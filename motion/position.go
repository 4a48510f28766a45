package motion

import (
	"strconv"
	"strings"
)

// Position is a parsed scroll boundary such as "top 85%": the point of the trigger element
// (TriggerEdge as a fraction of its height plus TriggerOffset pixels) that must line up with a
// point of the viewport (ViewportEdge fraction plus ViewportOffset pixels). A Relative position
// ("+=500") is Distance pixels after the resolved start.
type Position struct {
	TriggerEdge    float64
	TriggerOffset  float64
	ViewportEdge   float64
	ViewportOffset float64

	Relative bool
	Distance float64
}

// Default boundaries: the link starts when the trigger's top meets the viewport bottom and ends
// when its bottom meets the viewport top.
var (
	DefaultStart = Position{TriggerEdge: 0, ViewportEdge: 1}
	DefaultEnd   = Position{TriggerEdge: 1, ViewportEdge: 0}
)

// ParsePosition parses "top 85%", "top top", "bottom 40%", "center center", "top+=100 80%",
// "200px 50%", "+=500" and "-=120".
func ParsePosition(s string) (Position, error) {
	const op = "position"
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		d, err := parsePixels(s[2:])
		if err != nil {
			return Position{}, configErr(op, s, "%v", err)
		}
		if s[0] == '-' {
			d = -d
		}
		return Position{Relative: true, Distance: d}, nil
	}
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, configErr(op, s, "want \"<trigger edge> <viewport edge>\" or \"+=<px>\"")
	}
	var p Position
	var err error
	if p.TriggerEdge, p.TriggerOffset, err = parseEdge(fields[0]); err != nil {
		return Position{}, configErr(op, s, "trigger edge: %v", err)
	}
	if p.ViewportEdge, p.ViewportOffset, err = parseEdge(fields[1]); err != nil {
		return Position{}, configErr(op, s, "viewport edge: %v", err)
	}
	return p, nil
}

// Pos parses a literal position and panics on malformed input.
func Pos(s string) *Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return &p
}

// parseEdge reads "top", "center", "bottom", "85%", "120px" or "120", optionally followed by
// "+=N" or "-=N" pixels.
func parseEdge(tok string) (edge, offset float64, err error) {
	base := tok
	if i := strings.Index(tok, "+="); i > 0 {
		base = tok[:i]
		offset, err = parsePixels(tok[i+2:])
	} else if i := strings.Index(tok, "-="); i > 0 {
		base = tok[:i]
		offset, err = parsePixels(tok[i+2:])
		offset = -offset
	}
	if err != nil {
		return 0, 0, err
	}
	switch base {
	case "top":
		return 0, offset, nil
	case "center":
		return 0.5, offset, nil
	case "bottom":
		return 1, offset, nil
	}
	if strings.HasSuffix(base, "%") {
		f, perr := strconv.ParseFloat(strings.TrimSuffix(base, "%"), 64)
		if perr != nil {
			return 0, 0, perr
		}
		return f / 100, offset, nil
	}
	px, perr := parsePixels(base)
	if perr != nil {
		return 0, 0, perr
	}
	return 0, offset + px, nil
}

func parsePixels(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
}

// Resolve converts the position into a document scroll offset for a trigger with bounds r and
// a viewport of height vh. start is the already resolved start, used by relative positions.
func (p Position) Resolve(r Rect, vh, start float64) float64 {
	if p.Relative {
		return start + p.Distance
	}
	return r.Y + p.TriggerEdge*r.H + p.TriggerOffset - (p.ViewportEdge*vh + p.ViewportOffset)
}

func (p Position) String() string {
	if p.Relative {
		if p.Distance < 0 {
			return "-=" + formatNumber(-p.Distance)
		}
		return "+=" + formatNumber(p.Distance)
	}
	return edgeString(p.TriggerEdge, p.TriggerOffset) + " " + edgeString(p.ViewportEdge, p.ViewportOffset)
}

func edgeString(edge, offset float64) string {
	var s string
	switch edge {
	case 0:
		s = "top"
	case 0.5:
		s = "center"
	case 1:
		s = "bottom"
	default:
		s = formatNumber(edge*100) + "%"
	}
	switch {
	case offset > 0:
		s += "+=" + formatNumber(offset)
	case offset < 0:
		s += "-=" + formatNumber(-offset)
	}
	return s
}
