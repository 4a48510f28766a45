package scenes

import (
	"errors"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/presets"
)

// aboutDepth is how far each parallax layer on the intro section travels.
var aboutDepth = []struct {
	kind string
	dy   float64
}{
	{"portrait", -80},
	{"parallax-dot", -200},
	{"logo", -40},
}

func mountAbout(s *PageScene) error {
	e := s.host.Engine
	errs := []error{s.intro()}

	if intro := s.node("intro"); intro != nil {
		for _, layer := range aboutDepth {
			for _, n := range s.nodes(layer.kind) {
				px, err := presets.NewParallax(e, presets.ParallaxConfig{
					Trigger:   intro,
					Target:    n,
					To:        map[string]motion.Value{motion.PropY: motion.Num(layer.dy)},
					End:       &motion.Position{Relative: true, Distance: cfg.Motion.ParallaxDistance},
					Smoothing: cfg.Motion.ParallaxSmoothing,
				})
				if err != nil {
					errs = append(errs, err)
					continue
				}
				s.scope.Add(px)
			}
		}
	}

	reg, err := s.revealUp("reveal", 0)
	errs = append(errs, err)
	if cards := s.node("cards"); cards != nil {
		if targets := s.ordered("card"); len(targets) > 0 {
			errs = append(errs, reg.Register(motion.RevealEntry{
				Targets:   targets,
				Trigger:   cards,
				From:      revealFrom(),
				Threshold: cfg.Reveal.Threshold,
				Duration:  cfg.Reveal.Duration,
				Ease:      cfg.Reveal.Ease,
				Stagger:   cfg.Reveal.Stagger,
			}))
		}
	}

	_, err = s.revealUp("job", 0)
	errs = append(errs, err)

	errs = append(errs, s.mountTimeline())
	return errors.Join(errs...)
}

// mountTimeline scrubs the experience dot down the line as the section scrolls past.
func (s *PageScene) mountTimeline() error {
	line, dot := s.node("exp-line"), s.node("exp-dot")
	if line == nil || dot == nil {
		return nil
	}
	travel := line.Box.H - dot.Box.H
	tw, err := s.host.Engine.Tween(dot, motion.ToValues(map[string]motion.Value{
		motion.PropY: motion.Num(travel),
	}), motion.TweenOptions{Duration: 1, Ease: "none", Paused: true})
	if err != nil {
		return err
	}
	s.scope.Add(tw)
	link, err := s.host.Engine.ScrollLink(tw, motion.LinkConfig{
		Trigger:   line,
		Start:     motion.Pos("top 60%"),
		End:       motion.Pos("bottom 40%"),
		Scrub:     true,
		Smoothing: cfg.Motion.ParallaxSmoothing,
	})
	if err != nil {
		return err
	}
	s.scope.Add(link)
	return nil
}
