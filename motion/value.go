package motion

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common property names understood by the presets and the demo renderer.
const (
	PropX       = "x"
	PropY       = "y"
	PropScale   = "scale"
	PropRotate  = "rotate"
	PropOpacity = "opacity"
	PropColor   = "color"
	PropZIndex  = "zIndex"
)

// Kind is the interpolation class of a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindNumber
	KindColor
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	case KindString:
		return "string"
	}
	return "none"
}

// Value is a property value: a number, an RGBA colour or a string.
type Value struct {
	Kind Kind
	N    float64
	C    color.RGBA
	S    string
}

func Num(f float64) Value { return Value{Kind: KindNumber, N: f} }

// RGBA wraps a colour. Colour values hold straight alpha: a color.RGBA is taken as is, the way
// ParseColor returns it, and any other colour type is unpremultiplied.
func RGBA(c color.Color) Value {
	if rgba, ok := c.(color.RGBA); ok {
		return Value{Kind: KindColor, C: rgba}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Value{Kind: KindColor, C: color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}}
}

func Str(s string) Value { return Value{Kind: KindString, S: s} }

// MustColor parses s with ParseColor and panics on failure. Meant for package-level defaults.
func MustColor(s string) Value {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return RGBA(c)
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return formatNumber(v.N)
	case KindColor:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", v.C.R, v.C.G, v.C.B, formatNumber(float64(v.C.A)/255))
	case KindString:
		return v.S
	}
	return "<none>"
}

// ParseColor accepts "#rgb", "#rrggbb" and "rgba(r,g,b,a)" / "rgb(r,g,b)" notations.
// Alpha in rgba() is a 0..1 fraction.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s
		if len(s) == 4 {
			hex = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	case strings.HasPrefix(s, "rgb"):
		open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
		if open < 0 || end < open {
			return color.RGBA{}, fmt.Errorf("parse color %q: missing parentheses", s)
		}
		parts := strings.Split(s[open+1:end], ",")
		if len(parts) != 3 && len(parts) != 4 {
			return color.RGBA{}, fmt.Errorf("parse color %q: want 3 or 4 components", s)
		}
		var ch [4]float64
		ch[3] = 1
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
			}
			ch[i] = f
		}
		return color.RGBA{
			R: clampByte(ch[0]),
			G: clampByte(ch[1]),
			B: clampByte(ch[2]),
			A: clampByte(ch[3] * 255),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("parse color %q: unsupported notation", s)
}

func clampByte(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

// Target is a renderable object owned by the presentation layer. The engine only reads and
// writes the properties it is asked to animate. Implementations must be comparable (pointer types).
type Target interface {
	Get(prop string) (Value, bool)
	Set(prop string, v Value)
}

// Props is a plain property bag implementing Target.
type Props struct {
	values map[string]Value
}

func NewProps(kv map[string]Value) *Props {
	p := &Props{values: make(map[string]Value, len(kv))}
	for k, v := range kv {
		p.values[k] = v
	}
	return p
}

func (p *Props) Get(prop string) (Value, bool) {
	v, ok := p.values[prop]
	return v, ok
}

func (p *Props) Set(prop string, v Value) {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	p.values[prop] = v
}

// Number returns the numeric value of prop, or 0.
func (p *Props) Number(prop string) float64 {
	return p.values[prop].N
}

// Set writes vals onto target immediately, in name order.
func Set(target Target, vals map[string]Value) {
	names := make([]string, 0, len(vals))
	for k := range vals {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		target.Set(k, vals[k])
	}
}

// Prop is one entry of a PropertySpec. A nil From means "the target's current value"; a nil To
// likewise, which makes a from-tween.
type Prop struct {
	From *Value
	To   *Value
}

func To(v Value) Prop { return Prop{To: &v} }

func From(v Value) Prop { return Prop{From: &v} }

func FromTo(a, b Value) Prop { return Prop{From: &a, To: &b} }

// PropertySpec maps property names to their from/to values.
type PropertySpec map[string]Prop

// ToValues builds a spec animating every property in vals to that value.
func ToValues(vals map[string]Value) PropertySpec {
	spec := make(PropertySpec, len(vals))
	for k, v := range vals {
		spec[k] = To(v)
	}
	return spec
}

// FromValues builds a spec animating every property from vals to its current value.
func FromValues(vals map[string]Value) PropertySpec {
	spec := make(PropertySpec, len(vals))
	for k, v := range vals {
		spec[k] = From(v)
	}
	return spec
}

func (s PropertySpec) validate(op string) error {
	if len(s) == 0 {
		return configErr(op, "spec", "no properties")
	}
	for name, p := range s {
		if name == "" {
			return configErr(op, "spec", "empty property name")
		}
		if p.From == nil && p.To == nil {
			return configErr(op, name, "neither from nor to given")
		}
		if (p.From != nil && p.From.Kind == KindNone) || (p.To != nil && p.To.Kind == KindNone) {
			return configErr(op, name, "value has no kind")
		}
		if p.From != nil && p.To != nil && p.From.Kind != p.To.Kind {
			return configErr(op, name, "mixed value kinds %s and %s", p.From.Kind, p.To.Kind)
		}
	}
	return nil
}

func (s PropertySpec) names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// splitNumbers returns the non-numeric skeleton of s and the numbers embedded in it.
func splitNumbers(s string) (string, []float64) {
	var nums []float64
	skeleton := numberRe.ReplaceAllStringFunc(s, func(m string) string {
		f, _ := strconv.ParseFloat(m, 64)
		nums = append(nums, f)
		return "\x00"
	})
	return skeleton, nums
}

func joinNumbers(skeleton string, nums []float64) string {
	var b strings.Builder
	i := 0
	for _, r := range skeleton {
		if r == 0 && i < len(nums) {
			b.WriteString(formatNumber(nums[i]))
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var colorTransparent = color.RGBA{}

func rgbaOf(ch []float64) color.RGBA {
	return color.RGBA{R: clampByte(ch[0]), G: clampByte(ch[1]), B: clampByte(ch[2]), A: clampByte(ch[3])}
}
