package scenes

import (
	"log"
	"sort"
	"sync"

	"github.com/automoto/scrollfx/assets"
	"github.com/automoto/scrollfx/components"
	cfg "github.com/automoto/scrollfx/config"
	"github.com/automoto/scrollfx/motion"
	"github.com/automoto/scrollfx/systems"
	"github.com/automoto/scrollfx/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Host is shared by every page scene for the lifetime of the game.
type Host struct {
	Changer SceneChanger
	Engine  *motion.Engine
	Flow    *systems.FlowPinner

	// OnReducedMotion runs after the preference was toggled, before the page remounts.
	OnReducedMotion func(on bool)
}

// Navigate switches to the page with the given id.
func (h *Host) Navigate(id cfg.PageID) {
	h.Changer.ChangeScene(New(h, id))
}

// ToggleReducedMotion flips the preference and remounts the current page so every tween is
// rebuilt under the new setting.
func (h *Host) ToggleReducedMotion(current cfg.PageID) {
	on := !h.Engine.ReducedMotion()
	h.Engine.SetReducedMotion(on)
	if h.OnReducedMotion != nil {
		h.OnReducedMotion(on)
	}
	h.Navigate(current)
}

type mountFunc func(s *PageScene) error

// PageScene is one routed page. Its engine objects are created on the first Update and killed
// together by Unmount.
type PageScene struct {
	host  *Host
	route cfg.Route
	mount mountFunc

	ecs   *ecs.ECS
	page  *components.PageData
	input *components.InputData
	hub   *systems.PointerHub
	scope *motion.Scope
	hooks []func()

	once    sync.Once
	unmount sync.Once
}

// New creates the scene for page id.
func New(host *Host, id cfg.PageID) *PageScene {
	s := &PageScene{host: host, route: cfg.Pages.Route(id)}
	switch s.route.ID {
	case cfg.PageAbout:
		s.mount = mountAbout
	case cfg.PageProjects:
		s.mount = mountProjects
	case cfg.PageGallery:
		s.mount = mountGallery
	default:
		s.mount = mountHome
	}
	return s
}

func (s *PageScene) Route() cfg.Route { return s.route }

func (s *PageScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *PageScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(cfg.Palette.Background)
		return
	}
	s.ecs.Draw(screen)
}

// Unmount kills every engine object the page created and releases the pinner.
func (s *PageScene) Unmount() {
	s.unmount.Do(func() {
		if s.scope != nil {
			s.scope.Kill()
		}
		s.host.Flow.Bind(nil)
	})
}

func (s *PageScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.scope = &motion.Scope{}
	e := s.host.Engine

	layout := assets.MustLoadPage(s.route.Layout)
	entry, err := factory.CreatePage(s.ecs, layout, s.route, components.MotionData{Engine: e, Scope: s.scope})
	if err != nil {
		log.Fatalf("Failed to build page %s: %v", s.route.Path, err)
	}
	s.page = components.Page.Get(entry)
	s.input = components.Input.Get(entry)

	s.host.Flow.Bind(s.page)
	e.Scroll(0)
	e.Refresh()

	s.hub = systems.NewPointerHub()
	if cfg.Cursor.Enabled {
		if _, err := factory.CreateCursor(s.ecs, e, s.scope, s.hub, systems.IsHoverTarget(s.ecs)); err != nil {
			log.Printf("Warning: Could not attach cursor: %v", err)
		}
	}

	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateScroll)
	s.ecs.AddSystem(systems.UpdatePointer(s.hub))
	s.ecs.AddSystem(s.runHooks)
	s.ecs.AddSystem(systems.UpdateDebug)
	s.ecs.AddSystem(systems.UpdateMotion)

	s.ecs.AddRenderer(cfg.Default, systems.DrawPage)
	s.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawCursor)

	if err := s.mount(s); err != nil {
		log.Printf("Warning: Page %s mounted with errors: %v", s.route.Path, err)
	}
}

func (s *PageScene) runHooks(_ *ecs.ECS) {
	if s.input.JustPressed(cfg.ActionToggleReducedMotion) {
		s.host.ToggleReducedMotion(s.route.ID)
		return
	}
	for _, h := range s.hooks {
		h()
	}
}

// onFrame registers a per-frame page behaviour, run after input and before the engine tick.
func (s *PageScene) onFrame(fn func()) { s.hooks = append(s.hooks, fn) }

// intro plays the page's entrance: every "intro" node rises in, in layout order.
func (s *PageScene) intro() error {
	targets := s.ordered("intro")
	if len(targets) == 0 {
		return nil
	}
	each := cfg.Motion.IntroStagger
	if s.host.Engine.ReducedMotion() {
		each = 0
	}
	tl, err := s.host.Engine.Stagger(targets, motion.FromValues(map[string]motion.Value{
		motion.PropOpacity: motion.Num(0),
		motion.PropY:       motion.Num(cfg.Motion.IntroRise),
	}), motion.TweenOptions{Duration: cfg.Motion.IntroDuration, Ease: "power3.out"}, each)
	if err != nil {
		return err
	}
	s.scope.Add(tl)
	tl.Seek(0)
	tl.Play()
	return nil
}

// revealUp registers a standard reveal for every node of kind, each triggered by itself.
func (s *PageScene) revealUp(kind string, delayStep float64) (*motion.RevealRegistry, error) {
	reg := s.host.Engine.Reveals()
	s.scope.Defer(reg.Teardown)
	var entries []motion.RevealEntry
	for i, n := range s.page.Kind(kind) {
		entries = append(entries, motion.RevealEntry{
			Targets:   []motion.Target{n},
			Trigger:   n,
			From:      revealFrom(),
			Threshold: cfg.Reveal.Threshold,
			Duration:  cfg.Reveal.Duration,
			Ease:      cfg.Reveal.Ease,
			Delay:     float64(i) * delayStep,
		})
	}
	if len(entries) == 0 {
		return reg, nil
	}
	return reg, reg.Register(entries...)
}

func revealFrom() map[string]motion.Value {
	return map[string]motion.Value{
		motion.PropOpacity: motion.Num(0),
		motion.PropY:       motion.Num(cfg.Reveal.Distance),
	}
}

// ordered returns the targets of kind sorted by their layout "order" property.
func (s *PageScene) ordered(kind string) []motion.Target {
	nodes := s.nodes(kind)
	out := make([]motion.Target, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func (s *PageScene) nodes(kind string) []*components.Node {
	nodes := s.page.Kind(kind)
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Order != nodes[j].Order {
			return nodes[i].Order < nodes[j].Order
		}
		return nodes[i].Index < nodes[j].Index
	})
	return nodes
}

func (s *PageScene) node(name string) *components.Node {
	n, ok := s.page.Node(name)
	if !ok {
		log.Printf("Warning: Page %s has no element %q", s.route.Path, name)
		return nil
	}
	return n
}

func (s *PageScene) onClick(name string, fn func()) {
	if !factory.OnClick(s.ecs, name, fn) {
		log.Printf("Warning: Page %s has no interactive element %q", s.route.Path, name)
	}
}
