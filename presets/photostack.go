package presets

import (
	"github.com/automoto/scrollfx/motion"
)

// PhotoStackConfig describes a pinned section whose stacked photos fly apart pair by pair as the
// page scrolls through the pin.
type PhotoStackConfig struct {
	Section motion.Element
	// Photos are listed top of the stack first.
	Photos []motion.Target

	// PairSize photos leave together; within a pair they alternate left and right.
	PairSize int
	// StaggerFraction is how far into the scrubbed timeline, as a fraction of its length,
	// each successive pair starts.
	StaggerFraction float64
	// PairDuration is each pair's share of the timeline.
	PairDuration float64

	Distance  float64
	Spread    float64
	Lift      float64
	Tilt      float64
	Smoothing float64
}

func (c *PhotoStackConfig) fill() {
	if c.PairSize == 0 {
		c.PairSize = 2
	}
	if c.StaggerFraction == 0 {
		c.StaggerFraction = 0.18
	}
	if c.PairDuration == 0 {
		c.PairDuration = 0.3
	}
	if c.Distance == 0 {
		c.Distance = 2000
	}
	if c.Spread == 0 {
		c.Spread = 420
	}
	if c.Lift == 0 {
		c.Lift = 60
	}
	if c.Tilt == 0 {
		c.Tilt = 12
	}
}

// PhotoStack is the pinned, scrubbed fly-apart sequence.
type PhotoStack struct {
	tl    *motion.Timeline
	link  *motion.ScrollLink
	pairs int
}

func NewPhotoStack(e *motion.Engine, cfg PhotoStackConfig) (*PhotoStack, error) {
	const op = "photo-stack"
	if cfg.Section == nil {
		return nil, configErr(op, "section", "nil section")
	}
	if len(cfg.Photos) == 0 {
		return nil, configErr(op, "photos", "no photos")
	}
	if cfg.PairSize < 0 || cfg.StaggerFraction < 0 || cfg.PairDuration < 0 || cfg.Distance < 0 {
		return nil, configErr(op, "config", "pair size, stagger, duration and distance must be >= 0")
	}
	cfg.fill()

	tl := e.Timeline(motion.TimelineOptions{})
	for i, photo := range cfg.Photos {
		pair, slot := i/cfg.PairSize, i%cfg.PairSize
		side := -1.0
		if slot%2 == 1 {
			side = 1
		}
		// Wider pairs spread further so later members clear the earlier ones.
		reach := cfg.Spread * float64(1+slot/2)
		tw, err := e.Tween(photo, motion.ToValues(map[string]motion.Value{
			motion.PropX:       motion.Num(side * reach),
			motion.PropY:       motion.Num(-cfg.Lift),
			motion.PropRotate:  motion.Num(side * cfg.Tilt),
			motion.PropOpacity: motion.Num(0),
		}), motion.TweenOptions{Duration: cfg.PairDuration, Ease: "power1.in", Paused: true})
		if err != nil {
			tl.Kill()
			return nil, err
		}
		if err := tl.Append(tw, motion.At(float64(pair)*cfg.StaggerFraction)); err != nil {
			tl.Kill()
			return nil, err
		}
	}

	link, err := e.ScrollLink(tl, motion.LinkConfig{
		Trigger:   cfg.Section,
		Start:     &motion.Position{TriggerEdge: 0, ViewportEdge: 0},
		End:       &motion.Position{Relative: true, Distance: cfg.Distance},
		Scrub:     true,
		Smoothing: cfg.Smoothing,
		Pin:       true,
	})
	if err != nil {
		tl.Kill()
		return nil, err
	}
	pairs := (len(cfg.Photos) + cfg.PairSize - 1) / cfg.PairSize
	return &PhotoStack{tl: tl, link: link, pairs: pairs}, nil
}

// Pairs returns how many groups the photos were split into.
func (p *PhotoStack) Pairs() int { return p.pairs }

func (p *PhotoStack) Timeline() *motion.Timeline { return p.tl }
func (p *PhotoStack) Link() *motion.ScrollLink   { return p.link }

// Kill releases the pin and stops the sequence. Photos keep their current pose.
func (p *PhotoStack) Kill() {
	p.link.Kill()
	p.tl.Kill()
}
