package motion

import "math"

// Rect is an axis-aligned box in document coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Element is a Target that can be measured. Bounds reports the element's layout box in
// document coordinates, ignoring pin offsets and animated transforms; ok is false while the
// element is not mounted.
type Element interface {
	Target
	Bounds() (r Rect, ok bool)
}

// PinState is what the host applies to a pinned element.
type PinState struct {
	// Pinned elements are taken out of flow and drawn at ViewportY (screen space).
	Pinned    bool
	ViewportY float64
	// FlowOffset shifts the element within normal flow once the pin is released past its end.
	FlowOffset float64
	// Spacer is the placeholder height reserved after the element.
	Spacer float64
}

// Pinner is implemented by the host layout.
type Pinner interface {
	ApplyPin(el Element, st PinState)
}

// LinkConfig configures a ScrollLink. Nil Start/End use DefaultStart/DefaultEnd.
type LinkConfig struct {
	Trigger Element
	Start   *Position
	End     *Position

	// Scrub binds animation progress to scroll progress. Smoothing > 0 adds that many seconds
	// of exponential lag (implies Scrub).
	Scrub     bool
	Smoothing float64

	// Pin holds the trigger in place while the link is between start and end.
	Pin bool

	// PlayIfPast plays a trigger-mode animation and runs OnEnter when the link is first measured
	// already past its start. Otherwise such a link snaps to its final state without callbacks.
	PlayIfPast bool

	OnEnter     func()
	OnLeave     func()
	OnEnterBack func()
	OnLeaveBack func()
}

type linkState uint8

const (
	linkPending linkState = iota
	linkActive
	linkKilled
)

// ScrollLink binds an animation (or just callbacks) to a scroll range of a trigger element.
type ScrollLink struct {
	e    *Engine
	anim Animation
	cfg  LinkConfig

	state  linkState
	start  float64
	end    float64
	single bool
	flow   Rect

	seeded   bool
	last     float64
	smooth   float64
	seekedAt float64
	fired    bool

	pin      PinState
	pinKnown bool
}

// ScrollLink creates a link. anim may be nil when only callbacks are needed. If the trigger
// cannot be measured yet the link is queued and resolved on a later Tick.
func (e *Engine) ScrollLink(anim Animation, cfg LinkConfig) (*ScrollLink, error) {
	const op = "scroll-link"
	if cfg.Trigger == nil {
		return nil, configErr(op, "trigger", "nil trigger")
	}
	if anim != nil && anim.Killed() {
		return nil, configErr(op, "animation", "already killed")
	}
	if cfg.Smoothing < 0 {
		return nil, configErr(op, "smoothing", "must be >= 0, got %v", cfg.Smoothing)
	}
	if cfg.Smoothing > 0 {
		cfg.Scrub = true
	}
	if cfg.Start == nil {
		p := DefaultStart
		cfg.Start = &p
	}
	if cfg.End == nil {
		p := DefaultEnd
		cfg.End = &p
	}
	if cfg.Start.Relative {
		return nil, configErr(op, "start", "relative start %s has nothing to be relative to", cfg.Start)
	}
	if anim != nil {
		anim.pause()
	}

	l := &ScrollLink{e: e, anim: anim, cfg: cfg, seekedAt: -1}
	ok, err := l.resolve()
	if err != nil {
		return nil, err
	}
	if cfg.Pin {
		if old := e.pins[cfg.Trigger]; old != nil {
			old.Kill()
		}
		e.pins[cfg.Trigger] = l
	}
	e.links = append(e.links, l)
	if ok {
		l.state = linkActive
		l.applySpacer()
		l.recompute(0)
	} else {
		e.warnf("scroll trigger not measurable yet, link queued (start %s)", cfg.Start)
	}
	return l, nil
}

// Start and End return the resolved scroll offsets (zero while pending).
func (l *ScrollLink) Start() float64 { return l.start }
func (l *ScrollLink) End() float64   { return l.end }

// Progress returns the last computed scroll progress.
func (l *ScrollLink) Progress() float64 { return l.last }

// Pending reports whether the trigger has not been measured yet.
func (l *ScrollLink) Pending() bool { return l.state == linkPending }

// Fired reports whether a trigger-mode link has started (or snapped) its animation.
func (l *ScrollLink) Fired() bool { return l.fired }

// Pinned reports whether the trigger is currently held in place.
func (l *ScrollLink) Pinned() bool { return l.pin.Pinned }

func (l *ScrollLink) Killed() bool { return l.state == linkKilled }

// Animation returns the bound animation, if any.
func (l *ScrollLink) Animation() Animation { return l.anim }

// Kill detaches the link and releases its pin synchronously. The bound animation is left as is.
// Safe to call repeatedly.
func (l *ScrollLink) Kill() {
	if l.state == linkKilled {
		return
	}
	wasActive := l.state == linkActive
	l.state = linkKilled
	l.detach()
	if l.cfg.Pin {
		if l.e.pins[l.cfg.Trigger] == l {
			delete(l.e.pins, l.cfg.Trigger)
		}
		if wasActive {
			l.setPin(PinState{})
		}
	}
}

func (l *ScrollLink) detach() {
	for i, o := range l.e.links {
		if o == l {
			l.e.links = append(l.e.links[:i], l.e.links[i+1:]...)
			return
		}
	}
}

// resolve measures the trigger and computes the scroll range.
func (l *ScrollLink) resolve() (bool, error) {
	r, ok := l.cfg.Trigger.Bounds()
	if !ok || (r.W == 0 && r.H == 0) {
		return false, nil
	}
	vh := l.e.viewportH
	start := l.cfg.Start.Resolve(r, vh, 0)
	end := l.cfg.End.Resolve(r, vh, start)
	single := false
	if r.H == 0 {
		end, single = start, true
	}
	if end < start || math.IsNaN(start) || math.IsNaN(end) {
		return false, configErr("scroll-link", "range", "start %v (%s) is after end %v (%s)",
			start, l.cfg.Start, end, l.cfg.End)
	}
	l.start, l.end, l.single, l.flow = start, end, single, r
	return true, nil
}

func (l *ScrollLink) progressAt(y float64) float64 {
	if l.single || l.end == l.start {
		if y >= l.start {
			return 1
		}
		return 0
	}
	return clamp01((y - l.start) / (l.end - l.start))
}

// update runs once per Tick in registration order.
func (l *ScrollLink) update(dt float64, relayout bool) {
	switch l.state {
	case linkKilled:
		return
	case linkPending:
		relayout = true
	}
	if relayout {
		ok, err := l.resolve()
		if err != nil {
			// The range is unusable: show the final state instead of a half-drawn one.
			l.e.warnf("%v; link dropped", err)
			if l.anim != nil {
				l.anim.Seek(1)
			}
			l.Kill()
			return
		}
		if !ok {
			return
		}
		l.state = linkActive
		l.applySpacer()
	}
	l.recompute(dt)
}

func (l *ScrollLink) recompute(dt float64) {
	p := l.progressAt(l.e.scrollY)

	if !l.seeded {
		l.seeded = true
		l.last, l.smooth = p, p
		if l.scrubbing() {
			l.seek(p)
		} else if p > 0 {
			// Already past the start when first measured.
			l.fired = true
			switch {
			case l.cfg.PlayIfPast:
				if l.anim != nil {
					l.anim.Play()
				}
				l.e.emit(l.cfg.OnEnter)
			case l.anim != nil:
				l.anim.Seek(1)
			}
			l.finishOneShot()
		}
		l.updatePin()
		return
	}

	prev := l.last
	l.last = p
	cfg := l.cfg

	if prev == 0 && p > 0 {
		if !l.scrubbing() {
			if !l.fired {
				l.fired = true
				if l.anim != nil {
					l.anim.Play()
				}
				l.e.emit(cfg.OnEnter)
			}
		} else {
			l.e.emit(cfg.OnEnter)
		}
	}
	if prev < 1 && p == 1 {
		l.e.emit(cfg.OnLeave)
	}
	if prev == 1 && p < 1 {
		l.e.emit(cfg.OnEnterBack)
	}
	if prev > 0 && p == 0 {
		l.e.emit(cfg.OnLeaveBack)
	}

	if l.scrubbing() {
		target := p
		if cfg.Smoothing > 0 {
			l.smooth += (target - l.smooth) * (1 - math.Exp(-dt/cfg.Smoothing))
			if math.Abs(target-l.smooth) < 1e-4 {
				l.smooth = target
			}
			target = l.smooth
		}
		l.seek(target)
	}
	l.updatePin()
	if l.fired && !l.scrubbing() {
		l.finishOneShot()
	}
}

func (l *ScrollLink) scrubbing() bool { return l.cfg.Scrub }

func (l *ScrollLink) seek(p float64) {
	if l.anim == nil || p == l.seekedAt {
		return
	}
	l.seekedAt = p
	l.anim.Seek(p)
}

// finishOneShot detaches a fired trigger-mode link unless it still has callbacks or a pin to serve.
func (l *ScrollLink) finishOneShot() {
	c := l.cfg
	if c.Pin || c.OnLeave != nil || c.OnEnterBack != nil || c.OnLeaveBack != nil {
		return
	}
	l.state = linkKilled
	l.detach()
}

func (l *ScrollLink) applySpacer() {
	if !l.cfg.Pin {
		return
	}
	st := l.pin
	st.Spacer = l.end - l.start
	l.pinKnown = false
	l.setPin(st)
}

func (l *ScrollLink) updatePin() {
	if !l.cfg.Pin || l.single {
		return
	}
	y := l.e.scrollY
	st := PinState{Spacer: l.end - l.start}
	switch {
	case y >= l.end:
		st.FlowOffset = l.end - l.start
	case y >= l.start:
		st.Pinned = true
		st.ViewportY = l.flow.Y - l.start
	}
	l.setPin(st)
}

func (l *ScrollLink) setPin(st PinState) {
	if l.pinKnown && st == l.pin {
		return
	}
	l.pin, l.pinKnown = st, true
	if l.e.pinner != nil {
		l.e.pinner.ApplyPin(l.cfg.Trigger, st)
	}
}
