package presets

import (
	"errors"
	"io"
	"log"
	"math"
	"testing"

	"github.com/automoto/scrollfx/motion"
)

type section struct {
	*motion.Props
	rect motion.Rect
}

func newSection(y, h float64) *section {
	return &section{Props: motion.NewProps(nil), rect: motion.Rect{Y: y, W: 1280, H: h}}
}

func (s *section) Bounds() (motion.Rect, bool) { return s.rect, true }

func testEngine() *motion.Engine {
	return motion.NewEngine(motion.WithLogger(log.New(io.Discard, "", 0)), motion.WithViewport(800))
}

func tick(e *motion.Engine, seconds float64) {
	for i := 0; i < int(math.Ceil(seconds*60)); i++ {
		e.Tick(1.0 / 60)
	}
}

func opacity(t motion.Target) float64 {
	v, _ := t.Get(motion.PropOpacity)
	return v.N
}

func TestCarouselTestimonialTransition(t *testing.T) {
	e := testEngine()
	slides := []motion.Target{motion.NewProps(nil), motion.NewProps(nil), motion.NewProps(nil)}
	var changes []int
	c, err := NewCarousel(e, CarouselConfig{Slides: slides, OnChange: func(i int) { changes = append(changes, i) }})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if opacity(slides[0]) != 1 || opacity(slides[1]) != 0 {
		t.Fatalf("Expected only the first slide visible")
	}

	idx, err := c.Go(Next)
	if err != nil || idx != 1 || c.Index() != 1 {
		t.Fatalf("Expected index 1, got %d (%v)", idx, err)
	}

	outDone, inDone := -1, -1
	for i := 0; i < 60; i++ {
		e.Tick(1.0 / 60)
		if outDone < 0 && opacity(slides[0]) == 0 {
			outDone = i
		}
		if inDone < 0 && opacity(slides[1]) == 1 {
			inDone = i
		}
	}
	if outDone < 0 || inDone < 0 {
		t.Fatalf("Expected both slides to finish, got out=%d in=%d", outDone, inDone)
	}
	if d := outDone - inDone; d < -1 || d > 1 {
		t.Errorf("Expected outgoing and incoming slides to finish together, got ticks %d and %d", outDone, inDone)
	}
	if c.Transitioner().State() != motion.Complete {
		t.Errorf("Expected Complete, got %s", c.Transitioner().State())
	}
	if x, _ := slides[0].Get(motion.PropX); x.N != -40 {
		t.Errorf("Expected the outgoing slide to leave to the left, got x=%v", x.N)
	}

	c.Go(Prev)
	if c.Index() != 0 {
		t.Errorf("Expected Prev to go back to 0, got %d", c.Index())
	}
	if x, _ := slides[0].Get(motion.PropX); x.N != -40 {
		t.Errorf("Expected the incoming slide to wait for its step, got x=%v", x.N)
	}
	e.Tick(1.0 / 60)
	if x, _ := slides[0].Get(motion.PropX); x.N >= 0 {
		t.Errorf("Expected Prev to bring the slide in from the left, got x=%v", x.N)
	}
	if len(changes) != 2 || changes[0] != 1 || changes[1] != 0 {
		t.Errorf("Expected OnChange with 1 then 0, got %v", changes)
	}
}

func TestCarouselInterruptedChange(t *testing.T) {
	e := testEngine()
	slides := []motion.Target{motion.NewProps(nil), motion.NewProps(nil), motion.NewProps(nil)}
	c, _ := NewCarousel(e, CarouselConfig{Slides: slides})

	c.Go(Next)
	tick(e, 0.3)
	mid := opacity(slides[1])
	if mid <= 0 || mid >= 1 {
		t.Fatalf("Expected slide 1 half way in, got %v", mid)
	}

	c.Go(Next)
	if c.Index() != 2 {
		t.Errorf("Expected index 2, got %d", c.Index())
	}
	if opacity(slides[1]) != mid {
		t.Errorf("Expected slide 1 to keep its interrupted opacity %v, got %v", mid, opacity(slides[1]))
	}
	if c.Transitioner().Runs() != 2 || !c.Transitioner().IsRunning() {
		t.Errorf("Expected exactly one live run after the interruption")
	}

	tick(e, 1)
	if opacity(slides[2]) != 1 || opacity(slides[1]) != 0 || opacity(slides[0]) != 0 {
		t.Errorf("Expected only slide 2 visible, got %v %v %v", opacity(slides[0]), opacity(slides[1]), opacity(slides[2]))
	}
}

func TestCarouselWordsAndAvatar(t *testing.T) {
	e := testEngine()
	slides := []motion.Target{motion.NewProps(nil), motion.NewProps(nil)}
	words := [][]motion.Target{
		{motion.NewProps(nil)},
		{motion.NewProps(nil), motion.NewProps(nil), motion.NewProps(nil)},
	}
	avatar := motion.NewProps(map[string]motion.Value{motion.PropY: motion.Num(0), motion.PropOpacity: motion.Num(1)})
	c, err := NewCarousel(e, CarouselConfig{Slides: slides, Words: words, Avatar: avatar})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	c.Go(Next)
	tick(e, 2)
	for i, w := range words[1] {
		if opacity(w) != 1 {
			t.Errorf("Expected word %d fully shown, got %v", i, opacity(w))
		}
	}
	if opacity(avatar) != 1 {
		t.Errorf("Expected avatar settled, got %v", opacity(avatar))
	}

	if _, err := NewCarousel(e, CarouselConfig{Slides: slides, Words: words[:1]}); !errors.Is(err, motion.ErrInvalidConfig) {
		t.Errorf("Expected mismatched word lists to fail, got %v", err)
	}
	if _, err := NewCarousel(e, CarouselConfig{}); !errors.Is(err, motion.ErrInvalidConfig) {
		t.Errorf("Expected an empty carousel to fail, got %v", err)
	}
}

func newTestModal(e *motion.Engine, cfg ModalConfig) (*Modal, *motion.Props, *motion.Props, *motion.Props) {
	overlay, panel, frame := motion.NewProps(nil), motion.NewProps(nil), motion.NewProps(map[string]motion.Value{motion.PropOpacity: motion.Num(1)})
	cfg.Overlay, cfg.Panel, cfg.Frame = overlay, panel, frame
	if cfg.Count == 0 {
		cfg.Count = 4
	}
	m, err := NewModal(e, cfg)
	if err != nil {
		panic(err)
	}
	return m, overlay, panel, frame
}

func TestModalOpenPageClose(t *testing.T) {
	e := testEngine()
	closed := 0
	var shown []int
	m, overlay, panel, frame := newTestModal(e, ModalConfig{
		OnClosed: func() { closed++ },
		OnIndex:  func(i int) { shown = append(shown, i) },
	})

	if m.HandleKey(KeyEscape) {
		t.Errorf("Expected keys to be ignored while closed")
	}
	if err := m.Open(2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	tick(e, 1)
	if opacity(overlay) != 1 || opacity(panel) != 1 {
		t.Errorf("Expected an open modal, got overlay %v panel %v", opacity(overlay), opacity(panel))
	}

	if !m.HandleKey(KeyRight) || m.Index() != 3 {
		t.Errorf("Expected right arrow to page to 3, got %d", m.Index())
	}
	tick(e, 0.1)
	if opacity(frame) >= 1 {
		t.Errorf("Expected the frame to dip while changing item")
	}
	tick(e, 1)
	if opacity(frame) != 1 || len(shown) != 1 || shown[0] != 3 {
		t.Errorf("Expected frame back and item 3 shown, got %v %v", opacity(frame), shown)
	}
	m.HandleKey(KeyRight)
	tick(e, 1)
	if m.Index() != 0 {
		t.Errorf("Expected the index to wrap to 0, got %d", m.Index())
	}

	m.HandleKey(KeyEscape)
	if m.IsOpen() || !m.Visible() {
		t.Errorf("Expected a closing modal to stay visible until its fade ends")
	}
	tick(e, 1)
	if m.Visible() || closed != 1 || opacity(overlay) != 0 || opacity(panel) != 0 {
		t.Errorf("Expected a closed modal, visible=%v closed=%d", m.Visible(), closed)
	}
	if err := m.Close(); err != nil || closed != 1 {
		t.Errorf("Expected Close on a closed modal to do nothing")
	}
}

func TestModalCloseWhileOpening(t *testing.T) {
	e := testEngine()
	m, overlay, _, _ := newTestModal(e, ModalConfig{})
	m.Open(0)
	tick(e, 0.1)
	mid := opacity(overlay)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("Expected overlay mid-fade, got %v", mid)
	}
	m.Close()
	if opacity(overlay) != mid {
		t.Errorf("Expected close to start from %v, got %v", mid, opacity(overlay))
	}
	tick(e, 1)
	if opacity(overlay) != 0 || m.Visible() {
		t.Errorf("Expected a fully closed modal, got %v", opacity(overlay))
	}

	if err := m.Open(9); !errors.Is(err, motion.ErrInvalidConfig) {
		t.Errorf("Expected an out of range index to fail, got %v", err)
	}
}

func TestModalSwipe(t *testing.T) {
	e := testEngine()
	m, _, _, _ := newTestModal(e, ModalConfig{Count: 3})
	m.Open(0)
	if m.Swipe(-30) {
		t.Errorf("Expected a short swipe to be ignored")
	}
	m.Swipe(-80)
	if m.Index() != 1 {
		t.Errorf("Expected a left swipe to go forward, got %d", m.Index())
	}
	m.Swipe(120)
	if m.Index() != 0 {
		t.Errorf("Expected a right swipe to go back, got %d", m.Index())
	}
}

func TestPhotoStack(t *testing.T) {
	e := testEngine()
	sec := newSection(1000, 600)
	photos := make([]motion.Target, 4)
	for i := range photos {
		photos[i] = motion.NewProps(map[string]motion.Value{
			motion.PropX: motion.Num(0), motion.PropY: motion.Num(0), motion.PropOpacity: motion.Num(1),
		})
	}
	ps, err := NewPhotoStack(e, PhotoStackConfig{Section: sec, Photos: photos})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ps.Pairs() != 2 {
		t.Errorf("Expected 2 pairs, got %d", ps.Pairs())
	}
	if ps.Link().Start() != 1000 || ps.Link().End() != 3000 {
		t.Errorf("Expected pin range 1000..3000, got %v..%v", ps.Link().Start(), ps.Link().End())
	}

	x := func(i int) float64 {
		v, _ := photos[i].Get(motion.PropX)
		return v.N
	}

	e.Scroll(1700)
	e.Tick(1.0 / 60)
	if !ps.Link().Pinned() {
		t.Errorf("Expected the section pinned mid-range")
	}
	if x(0) >= 0 || x(1) <= 0 {
		t.Errorf("Expected the first pair to split left and right, got %v and %v", x(0), x(1))
	}
	if x(2) != 0 || x(3) != 0 {
		t.Errorf("Expected the second pair to wait, got %v and %v", x(2), x(3))
	}

	e.Scroll(3000)
	e.Tick(1.0 / 60)
	for i := range photos {
		if opacity(photos[i]) != 0 {
			t.Errorf("Expected photo %d gone at the end, got %v", i, opacity(photos[i]))
		}
	}
	if ps.Link().Pinned() {
		t.Errorf("Expected the pin released at the end")
	}

	ps.Kill()
	ps.Kill()
	if e.Links() != 0 {
		t.Errorf("Expected Kill to drop the link, got %d", e.Links())
	}
}

func TestPhotoStackPairSize(t *testing.T) {
	e := testEngine()
	photos := []motion.Target{motion.NewProps(nil), motion.NewProps(nil), motion.NewProps(nil), motion.NewProps(nil)}
	ps, err := NewPhotoStack(e, PhotoStackConfig{Section: newSection(0, 400), Photos: photos, PairSize: 3, StaggerFraction: 0.25})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ps.Pairs() != 2 {
		t.Errorf("Expected 2 groups, got %d", ps.Pairs())
	}
	if s := ps.Timeline().StartOf(nil); s != -1 {
		t.Errorf("Expected StartOf(nil) to be -1, got %v", s)
	}
	if d := ps.Timeline().Duration(); math.Abs(d-0.55) > 1e-9 {
		t.Errorf("Expected duration 0.55, got %v", d)
	}

	if _, err := NewPhotoStack(e, PhotoStackConfig{Section: newSection(0, 400), Photos: photos, StaggerFraction: -1}); !errors.Is(err, motion.ErrInvalidConfig) {
		t.Errorf("Expected a negative stagger to fail, got %v", err)
	}
}

func TestParallax(t *testing.T) {
	e := testEngine()
	hero := newSection(0, 800)
	portrait := motion.NewProps(map[string]motion.Value{motion.PropY: motion.Num(0)})
	p, err := NewParallax(e, ParallaxConfig{
		Trigger: hero,
		Target:  portrait,
		To:      map[string]motion.Value{motion.PropY: motion.Num(-80)},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	e.Scroll(250)
	e.Tick(1.0 / 60)
	if y := portrait.Number(motion.PropY); math.Abs(y+40) > 1e-3 {
		t.Errorf("Expected y=-40 half way, got %v", y)
	}
	e.Scroll(1000)
	e.Tick(1.0 / 60)
	if y := portrait.Number(motion.PropY); y != -80 {
		t.Errorf("Expected y=-80 past the end, got %v", y)
	}
	if p.Progress() != 1 {
		t.Errorf("Expected progress 1, got %v", p.Progress())
	}
	p.Kill()
	e.Scroll(0)
	e.Tick(1.0 / 60)
	if y := portrait.Number(motion.PropY); y != -80 {
		t.Errorf("Expected a killed parallax to stop tracking, got %v", y)
	}
}
