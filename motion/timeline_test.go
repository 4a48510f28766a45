package motion

import (
	"errors"
	"testing"
)

func linear(d float64) TweenOptions {
	return TweenOptions{Duration: d, Ease: "linear", Paused: true}
}

func TestTimelineSequencing(t *testing.T) {
	e := testEngine()
	a, b := NewProps(nil), NewProps(nil)
	tl := e.Timeline(TimelineOptions{})
	ta := e.MustTween(a, PropertySpec{PropX: FromTo(Num(0), Num(1))}, linear(1))
	tb := e.MustTween(b, PropertySpec{PropX: FromTo(Num(0), Num(1))}, linear(0.5))
	tc := e.MustTween(b, PropertySpec{PropY: FromTo(Num(0), Num(1))}, linear(0.5))
	tl.MustAppend(ta, Offset{}).MustAppend(tb, Offset{}).MustAppend(tc, MustOffset("<0.25"))

	if s := tl.StartOf(tb); s != 1 {
		t.Errorf("Expected second child to start at 1, got %v", s)
	}
	if s := tl.StartOf(tc); s != 1.25 {
		t.Errorf("Expected third child to start at 1.25, got %v", s)
	}
	if d := tl.Duration(); d != 1.75 {
		t.Errorf("Expected duration 1.75, got %v", d)
	}
	if tl.StartOf(e.MustTween(a, PropertySpec{PropY: To(Num(1))}, linear(1))) != -1 {
		t.Errorf("Expected StartOf a foreign tween to be -1")
	}
}

func TestTimelineCarouselOverlapEndsTogether(t *testing.T) {
	e := testEngine()
	out, in := NewProps(nil), NewProps(nil)
	tl := e.Timeline(TimelineOptions{})
	tl.MustAppend(e.MustTween(out, PropertySpec{PropOpacity: To(Num(0))}, linear(0.6)), Offset{})
	tl.MustAppend(e.MustTween(in, PropertySpec{PropOpacity: To(Num(1))}, linear(0.55)), MustOffset("<0.05"))

	if d := tl.Duration(); !near(d, 0.6) {
		t.Errorf("Expected both tweens to end together at 0.6, got %v", d)
	}
}

func TestTimelineRejectsBadOffsets(t *testing.T) {
	e := testEngine()
	p := NewProps(nil)
	tl := e.Timeline(TimelineOptions{})

	tests := []struct {
		name   string
		offset Offset
	}{
		{"Negative absolute", At(-1)},
		{"Negative relative to empty end", Relative(-0.5)},
		{"Negative gap", After(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := e.MustTween(p, PropertySpec{PropX: To(Num(1))}, linear(1))
			if err := tl.Append(tw, tt.offset); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	if tl.Children() != 0 {
		t.Errorf("Expected rejected children to stay out, got %d", tl.Children())
	}
}

func TestTimelineKillTwice(t *testing.T) {
	e := testEngine()
	p := NewProps(map[string]Value{PropX: Num(0)})
	completed := 0
	tl := e.Timeline(TimelineOptions{OnComplete: func() { completed++ }})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropX: To(Num(100))}, linear(1)), At(0))
	tl.Play()
	run(e, 0.5)

	tl.Kill()
	frozen := p.Number(PropX)
	tl.Kill()
	run(e, 1)
	if !tl.Killed() || p.Number(PropX) != frozen {
		t.Errorf("Expected a second Kill to change nothing, x=%v want %v", p.Number(PropX), frozen)
	}
	if completed != 0 || e.Active() != 0 {
		t.Errorf("Expected no completion and nothing scheduled, completed=%d active=%d", completed, e.Active())
	}
}

func TestTimelineOwnership(t *testing.T) {
	e := testEngine()
	p := NewProps(nil)
	outer := e.Timeline(TimelineOptions{})
	inner := e.Timeline(TimelineOptions{})

	if err := outer.Append(outer, Offset{}); err == nil {
		t.Errorf("Expected a timeline to refuse itself")
	}
	if err := outer.Append(inner, Offset{}); err != nil {
		t.Fatalf("Expected nesting to work, got %v", err)
	}
	if err := inner.Append(outer, Offset{}); err == nil {
		t.Errorf("Expected a cycle to be refused")
	}

	tw := e.MustTween(p, PropertySpec{PropX: To(Num(1))}, linear(1))
	inner.MustAppend(tw, At(0.5))
	if err := outer.Append(tw, Offset{}); err == nil {
		t.Errorf("Expected an owned tween to be refused by a second timeline")
	}
	if d := outer.Duration(); d != 1.5 {
		t.Errorf("Expected nested duration to propagate, got %v", d)
	}

	outer.Kill()
	if !inner.Killed() || !tw.Killed() {
		t.Errorf("Expected Kill to reach every descendant")
	}
}

func TestTimelineSeekIsDeterministic(t *testing.T) {
	e := testEngine()
	p := NewProps(map[string]Value{PropX: Num(0)})
	tl := e.Timeline(TimelineOptions{})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropX: To(Num(100))}, linear(1)), Offset{})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropX: To(Num(200))}, linear(1)), Offset{})

	tests := []struct {
		progress float64
		want     float64
	}{
		{0.25, 50},
		{0.75, 150},
		{0, 0},
		{1, 200},
		{0.5, 100},
		{0.75, 150},
	}
	for _, tt := range tests {
		tl.Seek(tt.progress)
		if x := p.Number(PropX); !near(x, tt.want) {
			t.Errorf("Expected x=%v at progress %v, got %v", tt.want, tt.progress, x)
		}
	}
}

func TestTimelineInstantSetWaitsForItsStart(t *testing.T) {
	e := testEngine()
	p := NewProps(map[string]Value{PropX: Num(0), PropZIndex: Num(0)})
	tl := e.Timeline(TimelineOptions{})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropX: To(Num(10))}, linear(1)), Offset{})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropZIndex: To(Num(5))}, TweenOptions{Paused: true}), At(1))

	tl.Seek(0.5)
	if z := p.Number(PropZIndex); z != 0 {
		t.Errorf("Expected zIndex untouched before its start, got %v", z)
	}
	tl.Seek(1)
	if z := p.Number(PropZIndex); z != 5 {
		t.Errorf("Expected zIndex=5 at the end, got %v", z)
	}
}

func TestTimelinePlayAndComplete(t *testing.T) {
	e := testEngine()
	p := NewProps(map[string]Value{PropX: Num(0)})
	completed := 0
	var order []string
	tl := e.Timeline(TimelineOptions{OnComplete: func() {
		completed++
		order = append(order, "timeline")
	}})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropX: To(Num(1))}, TweenOptions{
		Duration:   0.5,
		Paused:     true,
		OnComplete: func() { order = append(order, "tween") },
	}), Offset{})
	tl.Play()

	run(e, 1)
	if completed != 1 {
		t.Errorf("Expected timeline OnComplete once, got %d", completed)
	}
	if len(order) != 2 || order[0] != "tween" {
		t.Errorf("Expected child completion before the timeline's, got %v", order)
	}
	if p.Number(PropX) != 1 {
		t.Errorf("Expected x=1, got %v", p.Number(PropX))
	}

	tl.Reverse()
	run(e, 1)
	if p.Number(PropX) != 0 || tl.Time() != 0 {
		t.Errorf("Expected reverse to rewind to 0, got x=%v time=%v", p.Number(PropX), tl.Time())
	}
}

func TestStagger(t *testing.T) {
	e := testEngine()
	targets := []Target{NewProps(nil), NewProps(nil), NewProps(nil)}
	tl, err := e.Stagger(targets, FromValues(map[string]Value{PropOpacity: Num(0)}), TweenOptions{Duration: 0.5}, 0.1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tl.Children() != 3 {
		t.Errorf("Expected 3 children, got %d", tl.Children())
	}
	if d := tl.Duration(); !near(d, 0.7) {
		t.Errorf("Expected duration 0.7, got %v", d)
	}
	if tl.Active() {
		t.Errorf("Expected stagger timeline to start paused")
	}

	if _, err := e.Stagger(targets, PropertySpec{}, TweenOptions{}, 0.1); err == nil {
		t.Errorf("Expected an empty spec to fail")
	}
	if _, err := e.Stagger(targets, ToValues(map[string]Value{PropX: Num(1)}), TweenOptions{}, -1); err == nil {
		t.Errorf("Expected a negative stagger to fail")
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 2},
		{">", 2},
		{">0.2", 2.2},
		{"<", 1},
		{"<0.05", 1.05},
		{"+=0.5", 3.5},
		{"-=0.5", 2.5},
		{"1.5", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			o, err := ParseOffset(tt.in)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := o.resolve(1, 2, 3); !near(got, tt.want) {
				t.Errorf("Expected %q to resolve to %v, got %v", tt.in, tt.want, got)
			}
		})
	}

	for _, bad := range []string{"soon", ">x", "+=?"} {
		if _, err := ParseOffset(bad); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected %q to be rejected, got %v", bad, err)
		}
	}
}

func TestTimelinePauseHoldsPlayhead(t *testing.T) {
	e := testEngine()
	p := NewProps(nil)
	tl := e.Timeline(TimelineOptions{})
	tl.MustAppend(e.MustTween(p, PropertySpec{PropX: FromTo(Num(0), Num(100))}, linear(1)), Offset{})

	tl.Play()
	run(e, 0.5)
	tl.Pause()
	x := p.Number(PropX)
	run(e, 0.5)

	if got := p.Number(PropX); got != x {
		t.Errorf("Expected paused timeline to hold x=%v, got %v", x, got)
	}
	if tl.Active() {
		t.Errorf("Expected paused timeline to be inactive")
	}

	tl.Play()
	run(e, 1)
	if got := p.Number(PropX); !near(got, 100) {
		t.Errorf("Expected resumed timeline to finish at 100, got %v", got)
	}
}
