package scenes

import (
	"errors"
	"log"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/presets"
	"github.com/automoto/scrollfx/systems/factory"
)

func mountHome(s *PageScene) error {
	e := s.host.Engine
	var errs []error

	errs = append(errs, s.intro())

	if hero, dot := s.node("hero"), s.node("hero-dot"); hero != nil && dot != nil {
		px, err := presets.NewParallax(e, presets.ParallaxConfig{
			Trigger:   hero,
			Target:    dot,
			To:        map[string]motion.Value{motion.PropY: motion.Num(-cfg.Motion.ParallaxDistance / 2), motion.PropScale: motion.Num(1.4)},
			End:       &motion.Position{Relative: true, Distance: cfg.Motion.ParallaxDistance},
			Smoothing: cfg.Motion.ParallaxSmoothing,
		})
		if err != nil {
			errs = append(errs, err)
		} else {
			s.scope.Add(px)
		}
	}

	reg, err := s.revealUp("reveal", 0)
	errs = append(errs, err)

	// Service cards share their section as trigger and reveal as one staggered group.
	if services := s.node("services"); services != nil {
		cards := s.ordered("card")
		if len(cards) > 0 {
			errs = append(errs, reg.Register(motion.RevealEntry{
				Targets:   cards,
				Trigger:   services,
				From:      revealFrom(),
				Threshold: cfg.Reveal.Threshold,
				Duration:  cfg.Reveal.Duration,
				Ease:      cfg.Reveal.Ease,
				Stagger:   cfg.Reveal.Stagger,
			}))
		}
	}

	errs = append(errs, s.mountTestimonials())

	s.onClick("hero-cta", func() { s.host.Navigate(cfg.PageProjects) })
	s.onClick("contact-btn", func() { log.Printf("Contact: hello@example.com") })
	return errors.Join(errs...)
}

func (s *PageScene) mountTestimonials() error {
	slides := s.nodes("slide")
	if len(slides) == 0 {
		return nil
	}
	targets := make([]motion.Target, len(slides))
	words := make([][]motion.Target, len(slides))
	for i, sl := range slides {
		targets[i] = sl
		for _, w := range factory.SplitWords(s.ecs, s.page, sl) {
			words[i] = append(words[i], w)
		}
	}
	var avatar motion.Target
	if a := s.node("avatar"); a != nil {
		avatar = a
	}

	car, err := presets.NewCarousel(s.host.Engine, presets.CarouselConfig{
		Slides: targets,
		Words:  words,
		Avatar: avatar,
	})
	if err != nil {
		return err
	}
	s.scope.Add(car)

	step := func(dir presets.Direction) {
		if _, err := car.Go(dir); err != nil {
			log.Printf("Warning: Carousel %s failed: %v", dir, err)
		}
	}
	s.onClick("prev", func() { step(presets.Prev) })
	s.onClick("next", func() { step(presets.Next) })
	s.onFrame(func() {
		switch {
		case s.input.JustPressed(cfg.ActionPrev):
			step(presets.Prev)
		case s.input.JustPressed(cfg.ActionNext):
			step(presets.Next)
		}
	})
	return nil
}
