package scenes

import (
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/presets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func mountProjects(s *PageScene) error {
	errs := []error{s.intro()}

	_, err := s.revealUp("project", cfg.Motion.CardDelayStep)
	errs = append(errs, err)
	_, err = s.revealUp("reveal", 0)
	errs = append(errs, err)

	errs = append(errs, s.mountModal())
	return errors.Join(errs...)
}

func (s *PageScene) mountModal() error {
	projects := s.nodes("project")
	overlay, panel, frame := s.node("modal-overlay"), s.node("modal-panel"), s.node("modal-frame")
	if len(projects) == 0 || overlay == nil || panel == nil || frame == nil {
		return nil
	}
	caption := func(i int) {
		frame.Text = fmt.Sprintf("%s walkthrough (%d/%d)", projects[i].Text, i+1, len(projects))
	}

	modal, err := presets.NewModal(s.host.Engine, presets.ModalConfig{
		Overlay: overlay,
		Panel:   panel,
		Frame:   frame,
		Count:   len(projects),
		OnOpen: func(i int) {
			s.page.Locked = true
			caption(i)
		},
		OnIndex: caption,
		OnClosed: func() {
			s.page.Locked = false
		},
	})
	if err != nil {
		return err
	}
	s.scope.Add(modal)
	// Unlock even when the page is torn down mid-animation.
	s.scope.Defer(func() { s.page.Locked = false })

	for i, p := range projects {
		s.onClick(p.Name, func() {
			if err := modal.Open(i); err != nil {
				log.Printf("Warning: Could not open %s: %v", p.Name, err)
			}
		})
	}
	closeModal := func() {
		if err := modal.Close(); err != nil {
			log.Printf("Warning: Could not close modal: %v", err)
		}
	}
	s.onClick("modal-overlay", closeModal)
	s.onClick("modal-close", closeModal)
	s.onClick("modal-panel", func() {})

	dragging, startX := false, 0
	s.onFrame(func() {
		switch {
		case s.input.JustPressed(cfg.ActionClose):
			modal.HandleKey(presets.KeyEscape)
		case s.input.JustPressed(cfg.ActionPrev):
			modal.HandleKey(presets.KeyLeft)
		case s.input.JustPressed(cfg.ActionNext):
			modal.HandleKey(presets.KeyRight)
		}

		if !modal.IsOpen() {
			dragging = false
			return
		}
		x, _ := ebiten.CursorPosition()
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			dragging, startX = true, x
		case dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
			dragging = false
			modal.Swipe(float64(x - startX))
		}
	})
	return nil
}
