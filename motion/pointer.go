package motion

import (
	"fmt"
	"reflect"
)

// PointerKind classifies pointer events delivered by a PointerSource.
type PointerKind uint8

const (
	// PointerMove carries the pointer position in viewport coordinates.
	PointerMove PointerKind = iota
	// PointerEnter and PointerLeave report crossing into or out of Element.
	PointerEnter
	PointerLeave
	// PointerOut and PointerOver report the pointer leaving or re-entering the viewport.
	PointerOut
	PointerOver
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case PointerOut:
		return "out"
	case PointerOver:
		return "over"
	}
	return fmt.Sprintf("PointerKind(%d)", uint8(k))
}

type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	// Element identifies the hovered element and must be comparable, e.g. a pointer. Enter events
	// carrying an uncomparable value (a map or slice) are ignored.
	Element any
}

// PointerSource is the host's pointer event stream. Subscribe returns the matching unsubscribe.
type PointerSource interface {
	Subscribe(fn func(PointerEvent)) (unsubscribe func())
}

// FollowerConfig configures a pointer follower. Zero timing and look fields take the defaults
// from DefaultFollowerConfig.
type FollowerConfig struct {
	Dot    Target
	Ring   Target
	Source PointerSource
	// Interactive decides whether an entered element grows the followers. Nil accepts every element.
	Interactive func(el any) bool

	DotLag   float64
	RingLag  float64
	MoveEase string

	HoverDuration float64
	HoverEase     string
	DotHoverScale float64
	DotHoverColor Value
	DotRestColor  Value
	RingRestScale float64

	FadeDuration float64
}

// DefaultFollowerConfig returns the stock cursor look.
func DefaultFollowerConfig() FollowerConfig {
	return FollowerConfig{
		DotLag:        0.15,
		RingLag:       0.15,
		MoveEase:      "power3.out",
		HoverDuration: 0.2,
		DotHoverScale: 3.2,
		DotHoverColor: MustColor("rgba(16,185,129,0.25)"),
		DotRestColor:  MustColor("rgba(34,197,94,1)"),
		RingRestScale: 0.6,
		FadeDuration:  0.2,
	}
}

func (c *FollowerConfig) fill() {
	d := DefaultFollowerConfig()
	if c.DotLag == 0 {
		c.DotLag = d.DotLag
	}
	if c.RingLag == 0 {
		c.RingLag = d.RingLag
	}
	if c.MoveEase == "" {
		c.MoveEase = d.MoveEase
	}
	if c.HoverDuration == 0 {
		c.HoverDuration = d.HoverDuration
	}
	if c.DotHoverScale == 0 {
		c.DotHoverScale = d.DotHoverScale
	}
	if c.DotHoverColor.Kind == KindNone {
		c.DotHoverColor = d.DotHoverColor
	}
	if c.DotRestColor.Kind == KindNone {
		c.DotRestColor = d.DotRestColor
	}
	if c.RingRestScale == 0 {
		c.RingRestScale = d.RingRestScale
	}
	if c.FadeDuration == 0 {
		c.FadeDuration = d.FadeDuration
	}
}

// PointerFollower attaches trailing cursor indicators to pointer sources.
type PointerFollower struct {
	e *Engine
}

func (e *Engine) PointerFollower() *PointerFollower {
	return &PointerFollower{e: e}
}

type slotKey struct {
	target Target
	prop   string
}

// Attachment is one live follower. Detach is safe to call more than once.
type Attachment struct {
	e   *Engine
	cfg FollowerConfig

	unsubscribe func()
	slots       map[slotKey]*Tween
	hovered     any
	outside     bool
	disabled    bool
	detached    bool
}

// Attach subscribes to cfg.Source exactly once and starts following.
func (pf *PointerFollower) Attach(cfg FollowerConfig) (*Attachment, error) {
	const op = "pointer-follower"
	if cfg.Dot == nil || cfg.Ring == nil {
		return nil, configErr(op, "targets", "dot and ring are required")
	}
	if cfg.Source == nil {
		return nil, configErr(op, "source", "nil pointer source")
	}
	if cfg.DotLag < 0 || cfg.RingLag < 0 || cfg.HoverDuration < 0 || cfg.FadeDuration < 0 {
		return nil, configErr(op, "timing", "durations must be >= 0")
	}
	cfg.fill()
	a := &Attachment{e: pf.e, cfg: cfg, slots: make(map[slotKey]*Tween)}
	a.unsubscribe = cfg.Source.Subscribe(a.handle)
	return a, nil
}

// Detach unsubscribes and stops follower tweens where they are.
func (a *Attachment) Detach() {
	if a.detached {
		return
	}
	a.detached = true
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	for k, tw := range a.slots {
		tw.Kill()
		delete(a.slots, k)
	}
}

func (a *Attachment) Detached() bool { return a.detached }

// Hovering reports whether the pointer is over an interactive element.
func (a *Attachment) Hovering() bool { return a.hovered != nil }

// SetEnabled pauses or resumes position tracking. Hover and visibility still respond.
func (a *Attachment) SetEnabled(on bool) { a.disabled = !on }

func (a *Attachment) handle(ev PointerEvent) {
	if a.detached {
		return
	}
	c := &a.cfg
	switch ev.Kind {
	case PointerMove:
		if a.disabled {
			return
		}
		pos := map[string]Value{PropX: Num(ev.X), PropY: Num(ev.Y)}
		a.to(c.Dot, pos, c.DotLag, c.MoveEase)
		a.to(c.Ring, pos, c.RingLag, c.MoveEase)
	case PointerEnter:
		if ev.Element == nil || (c.Interactive != nil && !c.Interactive(ev.Element)) {
			return
		}
		if !reflect.TypeOf(ev.Element).Comparable() {
			a.e.warnf("pointer follower: ignoring uncomparable element of type %T", ev.Element)
			return
		}
		a.hovered = ev.Element
		a.to(c.Dot, map[string]Value{PropScale: Num(c.DotHoverScale), PropColor: c.DotHoverColor}, c.HoverDuration, c.HoverEase)
		a.to(c.Ring, map[string]Value{PropScale: Num(1), PropOpacity: Num(1)}, c.HoverDuration, c.HoverEase)
	case PointerLeave:
		if a.hovered == nil || ev.Element != a.hovered {
			return
		}
		a.hovered = nil
		a.to(c.Dot, map[string]Value{PropScale: Num(1), PropColor: c.DotRestColor}, c.HoverDuration, c.HoverEase)
		a.to(c.Ring, map[string]Value{PropScale: Num(c.RingRestScale), PropOpacity: Num(0)}, c.HoverDuration, c.HoverEase)
	case PointerOut:
		a.outside = true
		fade := map[string]Value{PropOpacity: Num(0)}
		a.to(c.Dot, fade, c.FadeDuration, "")
		a.to(c.Ring, fade, c.FadeDuration, "")
	case PointerOver:
		if !a.outside {
			return
		}
		a.outside = false
		a.to(c.Dot, map[string]Value{PropOpacity: Num(1)}, c.FadeDuration, "")
		ring := 0.0
		if a.hovered != nil {
			ring = 1
		}
		a.to(c.Ring, map[string]Value{PropOpacity: Num(ring)}, c.FadeDuration, "")
	}
}

// to starts one tween per property, replacing whatever tween currently owns that property.
func (a *Attachment) to(target Target, vals map[string]Value, dur float64, easeName string) {
	for prop, v := range vals {
		k := slotKey{target, prop}
		if old := a.slots[k]; old != nil {
			old.Kill()
		}
		tw, err := a.e.Tween(target, PropertySpec{prop: To(v)}, TweenOptions{Duration: dur, Ease: easeName})
		if err != nil {
			a.e.warnf("pointer follower: %v", err)
			delete(a.slots, k)
			continue
		}
		a.slots[k] = tw
	}
}
