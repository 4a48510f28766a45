package presets

import (
	"github.com/automoto/scrollfx/motion"
)

// Direction picks the neighbour a Carousel moves to.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// CarouselConfig describes a stack of slides shown one at a time.
type CarouselConfig struct {
	Slides []motion.Target
	// Words optionally lists the word targets of each slide; they rise in after the slide.
	Words  [][]motion.Target
	Avatar motion.Target

	Shift       float64
	OutDuration float64
	OutEase     string
	InDelay     float64
	InEase      string
	WordStagger float64
	WordRise    float64

	OnChange func(index int)
}

func (c *CarouselConfig) fill() {
	if c.Shift == 0 {
		c.Shift = 40
	}
	if c.OutDuration == 0 {
		c.OutDuration = 0.6
	}
	if c.OutEase == "" {
		c.OutEase = "power2.in"
	}
	if c.InDelay == 0 {
		c.InDelay = 0.05
	}
	if c.InEase == "" {
		c.InEase = "power3.out"
	}
	if c.WordStagger == 0 {
		c.WordStagger = 0.015
	}
	if c.WordRise == 0 {
		c.WordRise = 12
	}
}

// Carousel cross-fades between slides. The outgoing and incoming slides finish together, and a
// new Go interrupts the previous one where it stands.
type Carousel struct {
	e     *motion.Engine
	cfg   CarouselConfig
	tr    *motion.Transitioner
	index int
}

// NewCarousel stacks the slides with only the first one visible.
func NewCarousel(e *motion.Engine, cfg CarouselConfig) (*Carousel, error) {
	if len(cfg.Slides) == 0 {
		return nil, configErr("carousel", "slides", "no slides")
	}
	if cfg.Words != nil && len(cfg.Words) != len(cfg.Slides) {
		return nil, configErr("carousel", "words", "%d word lists for %d slides", len(cfg.Words), len(cfg.Slides))
	}
	if cfg.InDelay < 0 || cfg.OutDuration < 0 {
		return nil, configErr("carousel", "timing", "negative duration or delay")
	}
	cfg.fill()
	if cfg.InDelay >= cfg.OutDuration {
		return nil, configErr("carousel", "timing", "in delay %v must be shorter than out duration %v", cfg.InDelay, cfg.OutDuration)
	}
	for i, s := range cfg.Slides {
		opacity := 0.0
		if i == 0 {
			opacity = 1
		}
		motion.Set(s, map[string]motion.Value{
			motion.PropOpacity: motion.Num(opacity),
			motion.PropX:       motion.Num(0),
		})
	}
	return &Carousel{e: e, cfg: cfg, tr: e.Transitioner(nil)}, nil
}

func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Len() int   { return len(c.cfg.Slides) }

// Transitioner exposes the controller running slide changes.
func (c *Carousel) Transitioner() *motion.Transitioner { return c.tr }

// Go moves one slide in dir and returns the new index.
func (c *Carousel) Go(dir Direction) (int, error) {
	total := len(c.cfg.Slides)
	if total < 2 {
		return c.index, nil
	}
	step := 1
	if dir == Prev {
		step = -1
	}
	next := (c.index + step + total) % total
	cur, in := c.cfg.Slides[c.index], c.cfg.Slides[next]

	xOut, xIn := -c.cfg.Shift, c.cfg.Shift
	if dir == Prev {
		xOut, xIn = xIn, xOut
	}

	e := c.e
	steps := []motion.Step{
		e.SetStep(in, map[string]motion.Value{
			motion.PropOpacity: motion.Num(0),
			motion.PropX:       motion.Num(xIn),
			motion.PropZIndex:  motion.Num(2),
		}, motion.At(0)),
		e.SetStep(cur, map[string]motion.Value{motion.PropZIndex: motion.Num(1)}, motion.At(0)),
	}
	// Slides left half-faded by an interrupted change fade with the outgoing one.
	for i, s := range c.cfg.Slides {
		if i == c.index || i == next {
			continue
		}
		if v, ok := s.Get(motion.PropOpacity); ok && v.N > 0 {
			steps = append(steps, e.TweenStep(s, motion.ToValues(map[string]motion.Value{
				motion.PropOpacity: motion.Num(0),
			}), motion.TweenOptions{Duration: c.cfg.OutDuration, Ease: c.cfg.OutEase}, motion.At(0)))
		}
	}
	steps = append(steps,
		e.TweenStep(cur, motion.ToValues(map[string]motion.Value{
			motion.PropX:       motion.Num(xOut),
			motion.PropOpacity: motion.Num(0),
		}), motion.TweenOptions{Duration: c.cfg.OutDuration, Ease: c.cfg.OutEase}, motion.At(0)),
		e.TweenStep(in, motion.ToValues(map[string]motion.Value{
			motion.PropX:       motion.Num(0),
			motion.PropOpacity: motion.Num(1),
		}), motion.TweenOptions{Duration: c.cfg.OutDuration - c.cfg.InDelay, Ease: c.cfg.InEase}, motion.With(c.cfg.InDelay)),
	)
	if c.cfg.Words != nil && len(c.cfg.Words[next]) > 0 {
		words := c.cfg.Words[next]
		steps = append(steps, motion.Step{
			Offset: motion.With(c.cfg.InDelay),
			Build: func() (motion.Animation, error) {
				return e.Stagger(words, motion.PropertySpec{
					motion.PropY:       motion.FromTo(motion.Num(c.cfg.WordRise), motion.Num(0)),
					motion.PropOpacity: motion.FromTo(motion.Num(0), motion.Num(1)),
					motion.PropRotate:  motion.FromTo(motion.Num(2), motion.Num(0)),
				}, motion.TweenOptions{Duration: 0.35, Ease: c.cfg.InEase}, c.cfg.WordStagger)
			},
		})
	}
	if c.cfg.Avatar != nil {
		steps = append(steps, e.TweenStep(c.cfg.Avatar, motion.PropertySpec{
			motion.PropY:       motion.FromTo(motion.Num(10), motion.Num(0)),
			motion.PropOpacity: motion.FromTo(motion.Num(0.85), motion.Num(1)),
		}, motion.TweenOptions{Duration: 0.4, Ease: c.cfg.InEase}, motion.With(0)))
	}

	if err := c.tr.Run(steps...); err != nil {
		return c.index, err
	}
	c.index = next
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(next)
	}
	return next, nil
}

// Kill stops any slide change in flight.
func (c *Carousel) Kill() { c.tr.Cancel() }
