package motion

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is implemented by *Tween and *Timeline.
type Animation interface {
	// Duration is the total length in seconds, delays included.
	Duration() float64
	// Progress is the current position as a 0..1 fraction of Duration.
	Progress() float64
	Seek(progress float64)
	Play()
	Reverse()
	Kill()
	Killed() bool

	render(t float64)
	// renderFrom writes the start state without moving the playhead or running callbacks.
	renderFrom()
	prime()
	pause()
	resetRun()
	setParent(tl *Timeline) bool
	touches(offset float64, out *[]touch)
}

// TweenOptions configures a Tween. Durations are in seconds.
type TweenOptions struct {
	Duration float64
	Delay    float64
	Ease     string

	OnStart    func()
	OnUpdate   func(progress float64)
	OnComplete func()

	// Paused tweens are not started by Engine.Tween; call Play or Seek.
	Paused bool
}

// track interpolates one property. Numeric values use one gween channel each.
type track struct {
	name     string
	kind     Kind
	from, to Value
	chans    []*gween.Tween
	skeleton string
	snap     bool
}

// Tween animates properties of one target. It is created with Engine.Tween.
type Tween struct {
	e      *Engine
	target Target
	spec   PropertySpec
	names  []string
	opts   TweenOptions
	ease   ease.TweenFunc
	parent *Timeline

	tracks   []*track
	captured bool

	time      float64
	rate      float64
	progress  float64
	playing   bool
	started   bool
	completed bool
	killed    bool
}

// Tween creates a tween on target. Unless opts.Paused is set it starts playing on the next Tick.
func (e *Engine) Tween(target Target, spec PropertySpec, opts TweenOptions) (*Tween, error) {
	const op = "tween"
	if target == nil {
		return nil, configErr(op, "target", "nil target")
	}
	if err := spec.validate(op); err != nil {
		return nil, err
	}
	if opts.Duration < 0 || math.IsNaN(opts.Duration) {
		return nil, configErr(op, "duration", "must be >= 0, got %v", opts.Duration)
	}
	if opts.Delay < 0 || math.IsNaN(opts.Delay) {
		return nil, configErr(op, "delay", "must be >= 0, got %v", opts.Delay)
	}
	fn, ok := e.Ease(opts.Ease)
	if !ok {
		e.warnf("unknown ease %q, using %q", opts.Ease, e.defaultEase)
	}
	if e.reduced {
		opts.Duration, opts.Delay = 0, 0
	}
	t := &Tween{
		e:      e,
		target: target,
		spec:   spec,
		names:  spec.names(),
		opts:   opts,
		ease:   fn,
		rate:   1,
	}
	if !opts.Paused {
		t.Play()
	}
	return t, nil
}

// MustTween is Tween for statically known specs; it panics on configuration errors.
func (e *Engine) MustTween(target Target, spec PropertySpec, opts TweenOptions) *Tween {
	t, err := e.Tween(target, spec, opts)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tween) Target() Target { return t.target }

func (t *Tween) Duration() float64 { return t.opts.Delay + t.opts.Duration }

func (t *Tween) Progress() float64 {
	d := t.Duration()
	if d == 0 {
		if t.progress >= 1 {
			return 1
		}
		return 0
	}
	return t.time / d
}

// Eased returns the eased progress last written to the target.
func (t *Tween) Eased() float64 { return t.progress }

func (t *Tween) Killed() bool { return t.killed }

// Active reports whether the clock is currently advancing the tween.
func (t *Tween) Active() bool { return t.playing && !t.killed }

// Completed reports whether the tween reached its end during the current run.
func (t *Tween) Completed() bool { return t.completed }

// Seek renders the tween at progress (0..1) without needing playback.
func (t *Tween) Seek(progress float64) {
	if t.killed {
		return
	}
	t.e.batch(func() { t.render(clamp01(progress) * t.Duration()) })
}

// Play runs the tween forward from its current position. A finished tween restarts.
func (t *Tween) Play() {
	if t.killed || t.parent != nil {
		return
	}
	if t.completed && t.time >= t.Duration() {
		t.resetRun()
		t.time = 0
	}
	t.rate = 1
	t.playing = true
	t.e.schedule(t)
}

// Reverse runs the tween backwards towards its start.
func (t *Tween) Reverse() {
	if t.killed || t.parent != nil {
		return
	}
	t.rate = -1
	t.playing = true
	t.e.schedule(t)
}

// Restart rewinds and plays again, reusing the captured from/to values.
func (t *Tween) Restart() {
	if t.killed || t.parent != nil {
		return
	}
	t.resetRun()
	t.time = 0
	t.Play()
}

// Invalidate drops the captured from/to values; they are re-read from the target on the next render.
func (t *Tween) Invalidate() {
	t.captured = false
	t.tracks = nil
}

// Kill stops the tween where it is. OnComplete is not invoked. Safe to call repeatedly.
func (t *Tween) Kill() {
	if t.killed {
		return
	}
	t.killed = true
	t.playing = false
	t.e.unschedule(t)
}

// Pause stops playback where the tween is.
func (t *Tween) Pause() {
	if t.killed || t.parent != nil {
		return
	}
	t.pause()
}

func (t *Tween) pause() {
	t.playing = false
	t.e.unschedule(t)
}

func (t *Tween) resetRun() {
	t.started = false
	t.completed = false
}

func (t *Tween) setParent(tl *Timeline) bool {
	if t.parent != nil || t.killed {
		return false
	}
	t.pause()
	t.parent = tl
	return true
}

func (t *Tween) touches(offset float64, out *[]touch) {
	for _, n := range t.names {
		*out = append(*out, touch{
			target: t.target,
			prop:   n,
			start:  offset + t.opts.Delay,
			end:    offset + t.Duration(),
		})
	}
}

func (t *Tween) advance(dt float64) bool {
	if t.killed || !t.playing {
		return false
	}
	t.render(t.time + dt*t.rate)
	d := t.Duration()
	if (t.rate > 0 && t.time >= d) || (t.rate < 0 && t.time <= 0) {
		t.playing = false
		return false
	}
	return true
}

// prime captures from/to values and writes the end state without callbacks, so a following
// timeline child that reads the same property sees this tween's result.
func (t *Tween) prime() {
	if !t.captured {
		t.capture()
	}
	t.write(1)
}

func (t *Tween) render(tm float64) {
	if t.killed {
		return
	}
	d := t.Duration()
	t.time = math.Max(0, math.Min(d, tm))
	if !t.captured {
		t.capture()
	}

	// tm is unclamped so an instant tween inside a timeline stays unapplied before its start.
	var lin float64
	if t.opts.Duration == 0 {
		if tm >= t.opts.Delay {
			lin = 1
		}
	} else {
		lin = clamp01((tm - t.opts.Delay) / t.opts.Duration)
	}
	t.write(lin)

	if !t.started && lin > 0 {
		t.started = true
		t.e.emit(t.opts.OnStart)
	}
	if t.opts.OnUpdate != nil {
		t.opts.OnUpdate(t.progress)
	}
	if lin >= 1 && !t.completed {
		t.completed = true
		t.e.emit(t.opts.OnComplete)
	}
}

func (t *Tween) renderFrom() {
	if t.killed {
		return
	}
	if !t.captured {
		t.capture()
	}
	t.time = 0
	t.write(0)
}

func (t *Tween) write(lin float64) {
	t.progress = easeProgress(t.ease, lin)
	for _, tr := range t.tracks {
		t.target.Set(tr.name, tr.at(lin))
	}
}

func (t *Tween) capture() {
	t.captured = true
	t.tracks = t.tracks[:0]
	for _, name := range t.names {
		p := t.spec[name]
		live, ok := t.target.Get(name)
		var from, to Value
		switch {
		case p.From != nil && p.To != nil:
			from, to = *p.From, *p.To
		case p.From != nil:
			from = *p.From
			to = live
			if !ok {
				to = zeroOf(from.Kind)
			}
		default:
			to = *p.To
			from = live
			if !ok {
				from = zeroOf(to.Kind)
			}
		}
		t.tracks = append(t.tracks, newTrack(name, from, to, t.ease))
	}
}

func zeroOf(k Kind) Value {
	switch k {
	case KindColor:
		return RGBA(colorTransparent)
	case KindString:
		return Str("")
	}
	return Num(0)
}

func newTrack(name string, from, to Value, fn ease.TweenFunc) *track {
	tr := &track{name: name, kind: to.Kind, from: from, to: to}
	if from.Kind != to.Kind {
		tr.snap = true
		return tr
	}
	switch to.Kind {
	case KindNumber:
		tr.chans = []*gween.Tween{gween.New(float32(from.N), float32(to.N), 1, fn)}
	case KindColor:
		a, b := from.C, to.C
		tr.chans = []*gween.Tween{
			gween.New(float32(a.R), float32(b.R), 1, fn),
			gween.New(float32(a.G), float32(b.G), 1, fn),
			gween.New(float32(a.B), float32(b.B), 1, fn),
			gween.New(float32(a.A), float32(b.A), 1, fn),
		}
	case KindString:
		sa, na := splitNumbers(from.S)
		sb, nb := splitNumbers(to.S)
		if sa != sb || len(na) != len(nb) || len(na) == 0 {
			tr.snap = true
			return tr
		}
		tr.skeleton = sb
		for i := range na {
			tr.chans = append(tr.chans, gween.New(float32(na[i]), float32(nb[i]), 1, fn))
		}
	default:
		tr.snap = true
	}
	return tr
}

// at returns the value for linear progress lin. Endpoints are exact.
func (tr *track) at(lin float64) Value {
	if lin <= 0 {
		return tr.from
	}
	if lin >= 1 || tr.snap {
		if lin >= 1 {
			return tr.to
		}
		return tr.from
	}
	vals := make([]float64, len(tr.chans))
	for i, ch := range tr.chans {
		v, _ := ch.Set(float32(lin))
		vals[i] = float64(v)
	}
	switch tr.kind {
	case KindNumber:
		return Num(vals[0])
	case KindColor:
		return Value{Kind: KindColor, C: rgbaOf(vals)}
	default:
		return Str(joinNumbers(tr.skeleton, vals))
	}
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
