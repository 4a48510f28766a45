package motion

import (
	"math"
	"sort"
)

// TimelineOptions configures a Timeline.
type TimelineOptions struct {
	OnUpdate   func(progress float64)
	OnComplete func()
	// Autoplay starts the timeline on creation; otherwise it waits for Play or Seek.
	Autoplay bool
}

type entry struct {
	child Animation
	start float64
}

// Timeline schedules tweens and nested timelines on a shared time axis.
type Timeline struct {
	e      *Engine
	opts   TimelineOptions
	parent *Timeline

	entries   []entry
	prevStart float64
	prevEnd   float64

	time      float64
	rate      float64
	playing   bool
	completed bool
	killed    bool
	chained   bool
}

// Timeline creates an empty timeline. It only starts on Play, or immediately when opts.Autoplay is set.
func (e *Engine) Timeline(opts TimelineOptions) *Timeline {
	tl := &Timeline{e: e, opts: opts, rate: 1}
	if opts.Autoplay {
		tl.Play()
	}
	return tl
}

// Append schedules child at offset. The child is owned by the timeline from now on.
func (tl *Timeline) Append(child Animation, offset Offset) error {
	const op = "timeline.append"
	if tl.killed {
		return configErr(op, "", "timeline killed")
	}
	if child == nil {
		return configErr(op, "child", "nil child")
	}
	if c, ok := child.(*Timeline); ok && (c == tl || c.contains(tl)) {
		return configErr(op, "child", "timeline cannot contain itself")
	}
	start := offset.resolve(tl.prevStart, tl.prevEnd, tl.Duration())
	if start < 0 || math.IsNaN(start) {
		return configErr(op, "offset", "%s resolves to negative start %v", offset, start)
	}
	if !child.setParent(tl) {
		return configErr(op, "child", "already owned by a timeline or killed")
	}
	tl.entries = append(tl.entries, entry{child: child, start: start})
	tl.prevStart = start
	tl.prevEnd = start + child.Duration()
	tl.chained = false
	return nil
}

// MustAppend is Append for statically built sequences; it panics on configuration errors.
func (tl *Timeline) MustAppend(child Animation, offset Offset) *Timeline {
	if err := tl.Append(child, offset); err != nil {
		panic(err)
	}
	return tl
}

func (tl *Timeline) contains(other *Timeline) bool {
	for _, en := range tl.entries {
		if c, ok := en.child.(*Timeline); ok && (c == other || c.contains(other)) {
			return true
		}
	}
	return false
}

// Children returns the number of direct children.
func (tl *Timeline) Children() int { return len(tl.entries) }

// StartOf returns the absolute start of child, or -1 if it is not a direct child.
func (tl *Timeline) StartOf(child Animation) float64 {
	for _, en := range tl.entries {
		if en.child == child {
			return en.start
		}
	}
	return -1
}

func (tl *Timeline) Duration() float64 {
	var d float64
	for _, en := range tl.entries {
		d = math.Max(d, en.start+en.child.Duration())
	}
	return d
}

func (tl *Timeline) Progress() float64 {
	d := tl.Duration()
	if d == 0 {
		if tl.completed {
			return 1
		}
		return 0
	}
	return tl.time / d
}

// Time returns the playhead position in seconds.
func (tl *Timeline) Time() float64 { return tl.time }

func (tl *Timeline) Killed() bool { return tl.killed }

// Active reports whether the clock is advancing the timeline.
func (tl *Timeline) Active() bool { return tl.playing && !tl.killed }

// Seek renders every child at progress*Duration. Repeated seeks to the same progress write identical values.
func (tl *Timeline) Seek(progress float64) {
	if tl.killed {
		return
	}
	tl.e.batch(func() { tl.render(clamp01(progress) * tl.Duration()) })
}

// Play runs forward from the playhead. A finished timeline restarts from zero.
func (tl *Timeline) Play() {
	if tl.killed || tl.parent != nil {
		return
	}
	if tl.completed && tl.time >= tl.Duration() {
		tl.resetRun()
		tl.time = 0
	}
	tl.rate = 1
	tl.playing = true
	tl.e.schedule(tl)
}

// Reverse runs backwards from the playhead towards zero.
func (tl *Timeline) Reverse() {
	if tl.killed || tl.parent != nil {
		return
	}
	tl.rate = -1
	tl.playing = true
	tl.e.schedule(tl)
}

// Kill stops the timeline and kills every child. Targets keep their last written values.
func (tl *Timeline) Kill() {
	if tl.killed {
		return
	}
	tl.killed = true
	tl.playing = false
	tl.e.unschedule(tl)
	for _, en := range tl.entries {
		en.child.Kill()
	}
}

// Pause stops playback at the playhead. Seek, Play and Reverse still work.
func (tl *Timeline) Pause() {
	if tl.killed || tl.parent != nil {
		return
	}
	tl.pause()
}

func (tl *Timeline) pause() {
	tl.playing = false
	tl.e.unschedule(tl)
}

func (tl *Timeline) resetRun() {
	tl.completed = false
	for _, en := range tl.entries {
		en.child.resetRun()
	}
}

func (tl *Timeline) setParent(p *Timeline) bool {
	if tl.parent != nil || tl.killed {
		return false
	}
	tl.pause()
	tl.parent = p
	return true
}

func (tl *Timeline) touches(offset float64, out *[]touch) {
	for _, en := range tl.entries {
		en.child.touches(offset+en.start, out)
	}
}

func (tl *Timeline) advance(dt float64) bool {
	if tl.killed || !tl.playing {
		return false
	}
	tl.render(tl.time + dt*tl.rate)
	d := tl.Duration()
	if (tl.rate > 0 && tl.time >= d) || (tl.rate < 0 && tl.time <= 0) {
		tl.playing = false
		return false
	}
	return true
}

// prime chains children in start order so a child that reads a live value sees the end state
// of earlier children on the same property.
func (tl *Timeline) prime() {
	for _, i := range tl.order() {
		tl.entries[i].child.prime()
	}
	tl.chained = true
}

// renderFrom writes every child's start state, latest start first, so the earliest child wins
// on a shared property.
func (tl *Timeline) renderFrom() {
	if tl.killed {
		return
	}
	if !tl.chained {
		tl.prime()
	}
	tl.time = 0
	idx := tl.order()
	for j := len(idx) - 1; j >= 0; j-- {
		tl.entries[idx[j]].child.renderFrom()
	}
}

func (tl *Timeline) order() []int {
	idx := make([]int, len(tl.entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return tl.entries[idx[a]].start < tl.entries[idx[b]].start
	})
	return idx
}

// render writes all children at timeline time tm. Children that have not started are written
// first (latest start first), then finished children in start order, then active ones, so that the
// child closest to the playhead wins when several write the same property.
func (tl *Timeline) render(tm float64) {
	if tl.killed {
		return
	}
	if !tl.chained {
		tl.prime()
	}
	d := tl.Duration()
	tl.time = math.Max(0, math.Min(d, tm))

	// Children get the unclamped local time so nested instant sets stay unapplied before their start.
	var pending, done, active []int
	for _, i := range tl.order() {
		en := tl.entries[i]
		switch {
		case tm < en.start:
			pending = append(pending, i)
		case tm >= en.start+en.child.Duration():
			done = append(done, i)
		default:
			active = append(active, i)
		}
	}
	for j := len(pending) - 1; j >= 0; j-- {
		en := tl.entries[pending[j]]
		en.child.render(tm - en.start)
	}
	for _, group := range [][]int{done, active} {
		for _, i := range group {
			en := tl.entries[i]
			en.child.render(tm - en.start)
		}
	}

	if tl.opts.OnUpdate != nil {
		tl.opts.OnUpdate(tl.Progress())
	}
	if tm >= d && !tl.completed {
		tl.completed = true
		tl.e.emit(tl.opts.OnComplete)
	}
}

// Stagger builds a timeline with one tween per target, each starting each seconds after the
// previous one. The timeline is returned paused.
func (e *Engine) Stagger(targets []Target, spec PropertySpec, opts TweenOptions, each float64) (*Timeline, error) {
	if each < 0 {
		return nil, configErr("stagger", "each", "must be >= 0, got %v", each)
	}
	opts.Paused = true
	tl := e.Timeline(TimelineOptions{})
	for i, target := range targets {
		tw, err := e.Tween(target, spec, opts)
		if err != nil {
			tl.Kill()
			return nil, err
		}
		if err := tl.Append(tw, At(float64(i)*each)); err != nil {
			tl.Kill()
			return nil, err
		}
	}
	return tl, nil
}
