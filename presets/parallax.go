package presets

import (
	"github.com/automoto/scrollfx/motion"
)

// ParallaxConfig scrubs Target towards To while Trigger scrolls through the range. Start and
// End default to "top top" and "+=500".
type ParallaxConfig struct {
	Trigger   motion.Element
	Target    motion.Target
	To        map[string]motion.Value
	Start     *motion.Position
	End       *motion.Position
	Ease      string
	Smoothing float64
}

// Parallax is one scroll-scrubbed tween.
type Parallax struct {
	tw   *motion.Tween
	link *motion.ScrollLink
}

func NewParallax(e *motion.Engine, cfg ParallaxConfig) (*Parallax, error) {
	if cfg.Ease == "" {
		cfg.Ease = "none"
	}
	if cfg.Start == nil {
		cfg.Start = &motion.Position{}
	}
	if cfg.End == nil {
		cfg.End = &motion.Position{Relative: true, Distance: 500}
	}
	tw, err := e.Tween(cfg.Target, motion.ToValues(cfg.To), motion.TweenOptions{Duration: 1, Ease: cfg.Ease, Paused: true})
	if err != nil {
		return nil, err
	}
	link, err := e.ScrollLink(tw, motion.LinkConfig{
		Trigger:   cfg.Trigger,
		Start:     cfg.Start,
		End:       cfg.End,
		Scrub:     true,
		Smoothing: cfg.Smoothing,
	})
	if err != nil {
		tw.Kill()
		return nil, err
	}
	return &Parallax{tw: tw, link: link}, nil
}

func (p *Parallax) Progress() float64 { return p.link.Progress() }

func (p *Parallax) Kill() {
	p.link.Kill()
	p.tw.Kill()
}
