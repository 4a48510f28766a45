package scenes

import (
	"errors"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/presets"
)

func mountGallery(s *PageScene) error {
	e := s.host.Engine
	errs := []error{s.intro()}

	reg, err := s.revealUp("reveal", 0)
	errs = append(errs, err)
	if grid := s.node("grid"); grid != nil {
		if items := s.ordered("gallery-item"); len(items) > 0 {
			errs = append(errs, reg.Register(motion.RevealEntry{
				Targets: items,
				Trigger: grid,
				From: map[string]motion.Value{
					motion.PropOpacity: motion.Num(0),
					motion.PropScale:   motion.Num(0.95),
				},
				Threshold: cfg.Reveal.Threshold,
				Duration:  cfg.Reveal.Duration,
				Ease:      cfg.Reveal.Ease,
				Stagger:   cfg.Reveal.Stagger,
			}))
		}
	}

	stack, photos := s.node("stack"), s.nodes("photo")
	if stack != nil && len(photos) > 0 {
		// Photo 1 is on top of the pile and leaves first.
		targets := make([]motion.Target, len(photos))
		for i, p := range photos {
			targets[i] = p
			motion.Set(p, map[string]motion.Value{motion.PropZIndex: motion.Num(float64(len(photos) - i))})
		}
		ps, err := presets.NewPhotoStack(e, presets.PhotoStackConfig{
			Section:         stack,
			Photos:          targets,
			PairSize:        cfg.Motion.PhotoStackPairSize,
			StaggerFraction: cfg.Motion.PhotoStackStagger,
			Distance:        cfg.Motion.PhotoStackDistance,
			Smoothing:       cfg.Motion.ParallaxSmoothing,
		})
		if err != nil {
			errs = append(errs, err)
		} else {
			s.scope.Add(ps)
		}
	}
	return errors.Join(errs...)
}
