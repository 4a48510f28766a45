package motion

import (
	"io"
	"log"
	"math"
)

// box is a measurable Target used as trigger and animated element in tests.
type box struct {
	*Props
	rect    Rect
	mounted bool
}

func newBox(y, h float64) *box {
	return &box{Props: NewProps(nil), rect: Rect{Y: y, W: 100, H: h}, mounted: true}
}

func (b *box) Bounds() (Rect, bool) { return b.rect, b.mounted }

type pinRecorder struct {
	calls map[Element][]PinState
}

func (p *pinRecorder) ApplyPin(el Element, st PinState) {
	if p.calls == nil {
		p.calls = make(map[Element][]PinState)
	}
	p.calls[el] = append(p.calls[el], st)
}

func (p *pinRecorder) last(el Element) PinState {
	c := p.calls[el]
	if len(c) == 0 {
		return PinState{}
	}
	return c[len(c)-1]
}

type fakeSource struct {
	subs        map[int]func(PointerEvent)
	next        int
	subscribed  int
	unsubscribe int
}

func (s *fakeSource) Subscribe(fn func(PointerEvent)) func() {
	if s.subs == nil {
		s.subs = make(map[int]func(PointerEvent))
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	s.subscribed++
	return func() {
		s.unsubscribe++
		delete(s.subs, id)
	}
}

func (s *fakeSource) emit(ev PointerEvent) {
	for _, fn := range s.subs {
		fn(ev)
	}
}

func testEngine(opts ...Option) *Engine {
	base := []Option{WithLogger(log.New(io.Discard, "", 0)), WithViewport(800)}
	return NewEngine(append(base, opts...)...)
}

// run ticks e at 60 Hz for the given number of seconds.
func run(e *Engine, seconds float64) {
	n := int(math.Ceil(seconds * 60))
	for i := 0; i < n; i++ {
		e.Tick(1.0 / 60)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}
