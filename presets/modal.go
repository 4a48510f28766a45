package presets

import (
	"math"

	"github.com/automoto/scrollfx/motion"
)

// Key is a keyboard key the Modal understands. Hosts translate their own key codes.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyLeft
	KeyRight
)

// SwipeThreshold is the horizontal travel in pixels a swipe needs to change item.
const SwipeThreshold = 50

// ModalConfig describes an overlay with a centred panel that pages through Count items.
type ModalConfig struct {
	Overlay motion.Target
	Panel   motion.Target
	// Frame is the media inside the panel; it dips out and back in when the item changes.
	Frame motion.Target
	Count int

	OnOpen   func(index int)
	OnIndex  func(index int)
	OnClosed func()
}

// Modal animates a lightbox. Open and Close share one Transitioner, so closing mid-open picks up
// from wherever the open animation got to.
type Modal struct {
	e       *motion.Engine
	cfg     ModalConfig
	tr      *motion.Transitioner
	frameTr *motion.Transitioner

	index   int
	open    bool
	visible bool
}

func NewModal(e *motion.Engine, cfg ModalConfig) (*Modal, error) {
	if cfg.Overlay == nil || cfg.Panel == nil {
		return nil, configErr("modal", "targets", "overlay and panel are required")
	}
	if cfg.Count <= 0 {
		return nil, configErr("modal", "count", "must be > 0, got %d", cfg.Count)
	}
	motion.Set(cfg.Overlay, map[string]motion.Value{motion.PropOpacity: motion.Num(0)})
	motion.Set(cfg.Panel, map[string]motion.Value{motion.PropOpacity: motion.Num(0), motion.PropScale: motion.Num(0.98)})
	return &Modal{e: e, cfg: cfg, tr: e.Transitioner(cfg.Panel), frameTr: e.Transitioner(cfg.Frame)}, nil
}

func (m *Modal) Index() int { return m.index }

// IsOpen reports whether the modal is open or opening.
func (m *Modal) IsOpen() bool { return m.open }

// Visible stays true until the close animation has finished.
func (m *Modal) Visible() bool { return m.visible }

// Open shows item i.
func (m *Modal) Open(i int) error {
	if i < 0 || i >= m.cfg.Count {
		return configErr("modal", "index", "%d out of range 0..%d", i, m.cfg.Count-1)
	}
	e := m.e
	var steps []motion.Step
	if !m.visible {
		steps = append(steps,
			e.SetStep(m.cfg.Overlay, map[string]motion.Value{motion.PropOpacity: motion.Num(0)}, motion.At(0)),
			e.SetStep(m.cfg.Panel, map[string]motion.Value{motion.PropOpacity: motion.Num(0), motion.PropScale: motion.Num(0.98)}, motion.At(0)),
		)
	}
	steps = append(steps,
		e.TweenStep(m.cfg.Overlay, motion.ToValues(map[string]motion.Value{motion.PropOpacity: motion.Num(1)}),
			motion.TweenOptions{Duration: 0.35, Ease: "power2.out"}, motion.At(0)),
		e.TweenStep(m.cfg.Panel, motion.ToValues(map[string]motion.Value{motion.PropOpacity: motion.Num(1), motion.PropScale: motion.Num(1)}),
			motion.TweenOptions{Duration: 0.45, Ease: "power3.out"}, motion.At(0)),
	)
	if err := m.tr.Run(steps...); err != nil {
		return err
	}
	m.index, m.open, m.visible = i, true, true
	if m.cfg.OnOpen != nil {
		m.cfg.OnOpen(i)
	}
	return nil
}

// Close fades the modal out; OnClosed runs once both fades are done.
func (m *Modal) Close() error {
	if !m.open {
		return nil
	}
	e := m.e
	m.open = false
	m.frameTr.Cancel()
	return m.tr.Run(
		e.TweenStep(m.cfg.Panel, motion.ToValues(map[string]motion.Value{motion.PropOpacity: motion.Num(0), motion.PropScale: motion.Num(0.99)}),
			motion.TweenOptions{Duration: 0.22, Ease: "power2.in"}, motion.At(0)),
		e.TweenStep(m.cfg.Overlay, motion.ToValues(map[string]motion.Value{motion.PropOpacity: motion.Num(0)}),
			motion.TweenOptions{Duration: 0.18, Ease: "power2.in"}, motion.At(0)),
		e.CallStep(m.closed, motion.Relative(0)),
	)
}

func (m *Modal) closed() {
	m.visible = false
	if m.cfg.OnClosed != nil {
		m.cfg.OnClosed()
	}
}

func (m *Modal) Next() error { return m.show((m.index + 1) % m.cfg.Count) }

func (m *Modal) Prev() error { return m.show((m.index - 1 + m.cfg.Count) % m.cfg.Count) }

// show switches the item while open, dipping the frame out and back in.
func (m *Modal) show(i int) error {
	if !m.open {
		return nil
	}
	m.index = i
	if m.cfg.Frame == nil {
		if m.cfg.OnIndex != nil {
			m.cfg.OnIndex(i)
		}
		return nil
	}
	e := m.e
	return m.frameTr.Run(
		e.TweenStep(m.cfg.Frame, motion.ToValues(map[string]motion.Value{motion.PropOpacity: motion.Num(0)}),
			motion.TweenOptions{Duration: 0.16, Ease: "power2.out"}, motion.Offset{}),
		e.CallStep(func() {
			if m.cfg.OnIndex != nil {
				m.cfg.OnIndex(i)
			}
		}, motion.Offset{}),
		e.TweenStep(m.cfg.Frame, motion.ToValues(map[string]motion.Value{motion.PropOpacity: motion.Num(1)}),
			motion.TweenOptions{Duration: 0.25, Ease: "power2.out"}, motion.Offset{}),
	)
}

// HandleKey reacts to Escape and the arrow keys while open and reports whether the key was used.
func (m *Modal) HandleKey(k Key) bool {
	if !m.open {
		return false
	}
	switch k {
	case KeyEscape:
		m.Close()
	case KeyLeft:
		m.Prev()
	case KeyRight:
		m.Next()
	default:
		return false
	}
	return true
}

// Swipe pages by a horizontal drag of dx pixels: left goes forward.
func (m *Modal) Swipe(dx float64) bool {
	if !m.open || math.Abs(dx) <= SwipeThreshold {
		return false
	}
	if dx < 0 {
		m.Next()
	} else {
		m.Prev()
	}
	return true
}

// Kill stops any running modal animation where it is.
func (m *Modal) Kill() {
	m.tr.Cancel()
	m.frameTr.Cancel()
}
