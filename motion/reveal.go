package motion

// DefaultRevealThreshold reveals an element when its top reaches 85% of the viewport height.
const DefaultRevealThreshold = 0.85

// RevealEntry describes a one-shot entrance animation. Targets animate from From to their
// current values once Trigger's top crosses Threshold of the viewport.
type RevealEntry struct {
	Targets   []Target
	From      map[string]Value
	Trigger   Element
	Threshold float64

	Duration float64
	Delay    float64
	Ease     string
	// Stagger adds this much delay per target, counted across every entry registered in the
	// same call that shares Trigger.
	Stagger float64

	OnReveal func()
}

type revealItem struct {
	link  *ScrollLink
	tl    *Timeline
	fired bool
}

// RevealRegistry tracks reveal entries waiting for their trigger, and the ones still animating.
type RevealRegistry struct {
	e       *Engine
	items   []*revealItem
	running []*revealItem
}

// Reveals creates an empty registry bound to e.
func (e *Engine) Reveals() *RevealRegistry {
	return &RevealRegistry{e: e}
}

// Register validates every entry first, then renders each in its from state and links it to
// its trigger.
func (r *RevealRegistry) Register(entries ...RevealEntry) error {
	const op = "reveal"
	for i := range entries {
		en := &entries[i]
		if en.Trigger == nil {
			return configErr(op, "trigger", "entry %d has no trigger", i)
		}
		if len(en.Targets) == 0 {
			return configErr(op, "targets", "entry %d has no targets", i)
		}
		if en.Threshold == 0 {
			en.Threshold = DefaultRevealThreshold
		}
		if en.Threshold < 0 || en.Threshold > 1 {
			return configErr(op, "threshold", "entry %d: %v outside 0..1", i, en.Threshold)
		}
		if en.Stagger < 0 || en.Delay < 0 || en.Duration < 0 {
			return configErr(op, "timing", "entry %d: negative duration, delay or stagger", i)
		}
		if err := FromValues(en.From).validate(op); err != nil {
			return err
		}
	}

	seen := make(map[Element]int)
	for _, en := range entries {
		item := &revealItem{}
		item.tl = r.e.Timeline(TimelineOptions{OnComplete: func() { r.retire(item) }})
		for _, target := range en.Targets {
			idx := seen[en.Trigger]
			seen[en.Trigger]++
			tw, err := r.e.Tween(target, FromValues(en.From), TweenOptions{
				Duration: en.Duration,
				Ease:     en.Ease,
				Paused:   true,
			})
			if err != nil {
				item.tl.Kill()
				return err
			}
			at := en.Delay + float64(idx)*en.Stagger
			if r.e.reduced {
				at = 0
			}
			if err := item.tl.Append(tw, At(at)); err != nil {
				item.tl.Kill()
				return err
			}
		}
		// From state is visible right away, before the trigger fires. Instant entries must not
		// jump to their end here.
		item.tl.renderFrom()

		onReveal := en.OnReveal
		// Listed before the link exists: an entry already in view fires while it is created.
		r.items = append(r.items, item)
		link, err := r.e.ScrollLink(item.tl, LinkConfig{
			Trigger: en.Trigger,
			Start:   &Position{TriggerEdge: 0, ViewportEdge: en.Threshold},
			// Entries already in view play their entrance on load.
			PlayIfPast: true,
			OnEnter: func() {
				r.fire(item)
				if onReveal != nil {
					onReveal()
				}
			},
		})
		if err != nil {
			r.items = removeItem(r.items, item)
			item.tl.Kill()
			return err
		}
		item.link = link
	}
	return nil
}

func (r *RevealRegistry) fire(item *revealItem) {
	if item.fired {
		return
	}
	item.fired = true
	r.items = removeItem(r.items, item)
	if item.tl.Active() {
		r.running = append(r.running, item)
	}
}

func (r *RevealRegistry) retire(item *revealItem) {
	r.running = removeItem(r.running, item)
}

// Pending returns how many entries have not fired yet.
func (r *RevealRegistry) Pending() int {
	for _, item := range append([]*revealItem(nil), r.items...) {
		if item.link.Fired() {
			r.fire(item)
		}
	}
	return len(r.items)
}

// Teardown kills every entry that has not fired and every reveal still animating.
func (r *RevealRegistry) Teardown() {
	for _, item := range r.items {
		item.link.Kill()
		item.tl.Kill()
	}
	for _, item := range r.running {
		item.tl.Kill()
	}
	r.items, r.running = nil, nil
}

func removeItem(items []*revealItem, item *revealItem) []*revealItem {
	for i, it := range items {
		if it == item {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
