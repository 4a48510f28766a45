package main

import (
	"fmt"

	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/presets"
)

// row is one animated target shown in the scrubber.
type row struct {
	name  string
	props *motion.Props
}

// scrubber is a preset built on a headless engine. Animation-backed presets seek their timeline;
// scroll-backed ones move the engine's scroll position.
type scrubber struct {
	rows     []row
	duration float64
	anim     interface {
		motion.Animation
		Pause()
	}
	scroll float64
}

func (s *scrubber) seek(e *motion.Engine, p float64) {
	if s.anim != nil {
		s.anim.Seek(p)
		return
	}
	e.Scroll(p * s.scroll)
}

func (s *scrubber) progress(e *motion.Engine) float64 {
	if s.anim != nil {
		return s.anim.Progress()
	}
	if s.scroll == 0 {
		return 0
	}
	return e.ScrollY() / s.scroll
}

type builder struct {
	about string
	build func(e *motion.Engine) (*scrubber, error)
}

var builders = map[string]builder{
	"stagger":    {"page intro: five lines rise in one after another", buildStagger},
	"photostack": {"pinned photo stack scrubbed by scroll", buildPhotoStack},
	"sequence":   {"timeline with absolute, gap and relative offsets", buildSequence},
}

func newRows(prefix string, n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{
			name: fmt.Sprintf("%s-%d", prefix, i+1),
			props: motion.NewProps(map[string]motion.Value{
				motion.PropX:       motion.Num(0),
				motion.PropY:       motion.Num(0),
				motion.PropScale:   motion.Num(1),
				motion.PropRotate:  motion.Num(0),
				motion.PropOpacity: motion.Num(1),
			}),
		}
	}
	return rows
}

func targets(rows []row) []motion.Target {
	out := make([]motion.Target, len(rows))
	for i, r := range rows {
		out[i] = r.props
	}
	return out
}

func buildStagger(e *motion.Engine) (*scrubber, error) {
	rows := newRows("line", 5)
	tl, err := e.Stagger(targets(rows), motion.FromValues(map[string]motion.Value{
		motion.PropOpacity: motion.Num(0),
		motion.PropY:       motion.Num(24),
	}), motion.TweenOptions{Duration: 0.8, Ease: "power3.out"}, 0.12)
	if err != nil {
		return nil, err
	}
	tl.Seek(0)
	return &scrubber{rows: rows, anim: tl, duration: tl.Duration()}, nil
}

func buildSequence(e *motion.Engine) (*scrubber, error) {
	rows := newRows("step", 3)
	tl := e.Timeline(motion.TimelineOptions{})
	steps := []struct {
		to     map[string]motion.Value
		offset motion.Offset
	}{
		{map[string]motion.Value{motion.PropX: motion.Num(120)}, motion.At(0)},
		{map[string]motion.Value{motion.PropScale: motion.Num(1.5), motion.PropRotate: motion.Num(45)}, motion.After(0.2)},
		{map[string]motion.Value{motion.PropOpacity: motion.Num(0), motion.PropY: motion.Num(-60)}, motion.Relative(-0.3)},
	}
	for i, st := range steps {
		tw, err := e.Tween(rows[i].props, motion.ToValues(st.to), motion.TweenOptions{Duration: 0.6, Ease: "power2.inOut", Paused: true})
		if err != nil {
			tl.Kill()
			return nil, err
		}
		if err := tl.Append(tw, st.offset); err != nil {
			tl.Kill()
			return nil, err
		}
	}
	return &scrubber{rows: rows, anim: tl, duration: tl.Duration()}, nil
}

// section is a fixed layout box for headless scroll links.
type section struct {
	*motion.Props
	r motion.Rect
}

func (s section) Bounds() (motion.Rect, bool) { return s.r, true }

func buildPhotoStack(e *motion.Engine) (*scrubber, error) {
	const distance = 2000
	e.Resize(720)
	rows := newRows("photo", 6)
	sec := section{Props: motion.NewProps(nil), r: motion.Rect{W: 1280, H: 720}}
	if _, err := presets.NewPhotoStack(e, presets.PhotoStackConfig{
		Section:  sec,
		Photos:   targets(rows),
		Distance: distance,
	}); err != nil {
		return nil, err
	}
	e.Scroll(0)
	e.Tick(0)
	return &scrubber{rows: rows, scroll: distance, duration: 2}, nil
}
