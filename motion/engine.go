package motion

import (
	"log"
	"sync"

	"github.com/tanema/gween/ease"
)

// player is anything the frame clock advances while it is playing.
type player interface {
	advance(dt float64) bool
}

// Engine owns the frame clock, the scroll source and the easing registry. All engine objects
// are created through an Engine and are driven by its Tick. An Engine is not safe for
// concurrent use; hosts call it from their single update loop.
type Engine struct {
	eases       map[string]ease.TweenFunc
	defaultEase string
	logger      *log.Logger
	pinner      Pinner
	reduced     bool

	players   []player
	scheduled map[player]bool

	links []*ScrollLink
	pins  map[Element]*ScrollLink

	scrollY     float64
	viewportH   float64
	scrollDirty bool
	layoutDirty bool

	queue []func()
	depth int
	frame uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithEase registers (or replaces) a named easing curve.
func WithEase(name string, fn ease.TweenFunc) Option {
	return func(e *Engine) { e.eases[name] = fn }
}

// WithDefaultEase sets the curve used by tweens that do not name one.
func WithDefaultEase(name string) Option {
	return func(e *Engine) { e.defaultEase = name }
}

// WithPinner installs the host hook that fixes pinned elements in place.
func WithPinner(p Pinner) Option {
	return func(e *Engine) { e.pinner = p }
}

// WithViewport sets the initial viewport height in pixels.
func WithViewport(height float64) Option {
	return func(e *Engine) { e.viewportH = height }
}

// WithLogger routes engine warnings to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithReducedMotion makes every tween created afterwards an instant set.
func WithReducedMotion(on bool) Option {
	return func(e *Engine) { e.reduced = on }
}

// NewEngine creates an engine context.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		eases:       make(map[string]ease.TweenFunc, len(builtinEases)),
		defaultEase: DefaultEase,
		logger:      log.Default(),
		scheduled:   make(map[player]bool),
		pins:        make(map[Element]*ScrollLink),
	}
	for k, fn := range builtinEases {
		e.eases[k] = fn
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine, creating it on first use.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Ease resolves a curve name. Unknown names fall back to the engine default, and report false.
func (e *Engine) Ease(name string) (ease.TweenFunc, bool) {
	if name == "" {
		name = e.defaultEase
	}
	if fn, ok := e.eases[name]; ok {
		return fn, true
	}
	if fn, ok := e.eases[normalizeEase(name)]; ok {
		return fn, true
	}
	if fn, ok := e.eases[e.defaultEase]; ok {
		return fn, false
	}
	return ease.OutCubic, false
}

// SetReducedMotion toggles instant tweens for objects created afterwards.
func (e *Engine) SetReducedMotion(on bool) { e.reduced = on }

// ReducedMotion reports whether new tweens are created as instant sets.
func (e *Engine) ReducedMotion() bool { return e.reduced }

// Scroll reports the document scroll offset. Links are recomputed on the next Tick.
func (e *Engine) Scroll(y float64) {
	if y != e.scrollY {
		e.scrollY = y
		e.scrollDirty = true
	}
}

// ScrollY returns the last reported scroll offset.
func (e *Engine) ScrollY() float64 { return e.scrollY }

// Resize reports a new viewport height and schedules re-resolution of every link.
func (e *Engine) Resize(height float64) {
	e.viewportH = height
	e.layoutDirty = true
}

// ViewportHeight returns the current viewport height.
func (e *Engine) ViewportHeight() float64 { return e.viewportH }

// Refresh schedules re-resolution of every link, e.g. after content changed size.
func (e *Engine) Refresh() { e.layoutDirty = true }

// Frame returns the number of ticks processed so far.
func (e *Engine) Frame() uint64 { return e.frame }

// Tick advances the engine by dt seconds: all links are recomputed in registration order,
// then every playing tween and timeline is stepped, then queued callbacks run.
func (e *Engine) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	e.frame++
	e.depth++

	players := append([]player(nil), e.players...)
	links := append([]*ScrollLink(nil), e.links...)

	relayout := e.layoutDirty
	e.layoutDirty = false
	e.scrollDirty = false
	for _, l := range links {
		l.update(dt, relayout)
	}

	for _, p := range players {
		if !e.scheduled[p] {
			continue
		}
		if !p.advance(dt) {
			e.unschedule(p)
		}
	}

	e.depth--
	e.flush()
}

func (e *Engine) schedule(p player) {
	if e.scheduled[p] {
		return
	}
	e.scheduled[p] = true
	e.players = append(e.players, p)
}

func (e *Engine) unschedule(p player) {
	if !e.scheduled[p] {
		return
	}
	delete(e.scheduled, p)
	for i, q := range e.players {
		if q == p {
			e.players = append(e.players[:i], e.players[i+1:]...)
			break
		}
	}
}

// Active returns the number of tweens and timelines currently advanced by the clock.
func (e *Engine) Active() int { return len(e.players) }

// Links returns the number of live scroll links.
func (e *Engine) Links() int { return len(e.links) }

// emit runs fn after the current batch of property writes, or immediately outside one.
func (e *Engine) emit(fn func()) {
	if fn == nil {
		return
	}
	if e.depth > 0 {
		e.queue = append(e.queue, fn)
		return
	}
	fn()
}

// batch groups writes so callbacks emitted inside fn run only after fn returns.
func (e *Engine) batch(fn func()) {
	e.depth++
	fn()
	e.depth--
	e.flush()
}

func (e *Engine) flush() {
	if e.depth > 0 {
		return
	}
	for len(e.queue) > 0 {
		fn := e.queue[0]
		e.queue = e.queue[1:]
		fn()
	}
}

func (e *Engine) warnf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf("Warning: "+format, args...)
	}
}
