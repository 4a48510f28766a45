package motion

import (
	"fmt"
	"strconv"
	"strings"
)

type offsetKind uint8

const (
	afterPrevEnd offsetKind = iota
	afterPrevStart
	fromTimelineEnd
	absolute
)

// Offset places a timeline child. The zero value appends after the previous child ends.
type Offset struct {
	kind offsetKind
	v    float64
}

// At places a child at an absolute time from the timeline start.
func At(seconds float64) Offset { return Offset{kind: absolute, v: seconds} }

// After places a child gap seconds after the previous child ends (">gap").
func After(gap float64) Offset { return Offset{kind: afterPrevEnd, v: gap} }

// With places a child delay seconds after the previous child starts ("<delay").
func With(delay float64) Offset { return Offset{kind: afterPrevStart, v: delay} }

// Relative places a child d seconds after the current end of the timeline ("+=d" / "-=d").
func Relative(d float64) Offset { return Offset{kind: fromTimelineEnd, v: d} }

// ParseOffset parses the string form: "", ">", ">0.2", "<", "<0.05", "+=0.2", "-=0.1" or "1.5".
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	num := func(rest string, sign float64) (float64, error) {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, configErr("offset", s, "bad number %q", rest)
		}
		return sign * f, nil
	}
	switch {
	case s == "":
		return Offset{}, nil
	case strings.HasPrefix(s, "+="):
		v, err := num(s[2:], 1)
		return Offset{kind: fromTimelineEnd, v: v}, err
	case strings.HasPrefix(s, "-="):
		v, err := num(s[2:], -1)
		return Offset{kind: fromTimelineEnd, v: v}, err
	case strings.HasPrefix(s, ">"):
		v, err := num(s[1:], 1)
		return Offset{kind: afterPrevEnd, v: v}, err
	case strings.HasPrefix(s, "<"):
		v, err := num(s[1:], 1)
		return Offset{kind: afterPrevStart, v: v}, err
	}
	v, err := num(s, 1)
	return Offset{kind: absolute, v: v}, err
}

// MustOffset is ParseOffset for literals; it panics on malformed input.
func MustOffset(s string) Offset {
	o, err := ParseOffset(s)
	if err != nil {
		panic(err)
	}
	return o
}

func (o Offset) String() string {
	v := formatNumber(o.v)
	switch o.kind {
	case afterPrevStart:
		return "<" + v
	case fromTimelineEnd:
		if o.v < 0 {
			return "-=" + formatNumber(-o.v)
		}
		return "+=" + v
	case absolute:
		return v
	}
	return ">" + v
}

func (o Offset) resolve(prevStart, prevEnd, end float64) float64 {
	switch o.kind {
	case afterPrevStart:
		return prevStart + o.v
	case fromTimelineEnd:
		return end + o.v
	case absolute:
		return o.v
	}
	return prevEnd + o.v
}

func (o Offset) GoString() string { return fmt.Sprintf("motion.MustOffset(%q)", o.String()) }
