package motion

// Killer is anything with an idempotent Kill: tweens, timelines, links, transitioners.
type Killer interface {
	Kill()
}

// Scope collects the engine objects a page section creates so they can be torn down together
// on unmount. Objects are killed in reverse order of registration.
type Scope struct {
	fns    []func()
	closed bool
}

// Add registers k and returns it. Adding to a closed scope kills k right away.
func (s *Scope) Add(k Killer) Killer {
	if k == nil {
		return nil
	}
	s.Defer(k.Kill)
	return k
}

// Defer registers a teardown function, e.g. RevealRegistry.Teardown or an Attachment's Detach.
func (s *Scope) Defer(fn func()) {
	if fn == nil {
		return
	}
	if s.closed {
		fn()
		return
	}
	s.fns = append(s.fns, fn)
}

// Kill runs every registered teardown once. Safe to call repeatedly.
func (s *Scope) Kill() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.fns) - 1; i >= 0; i-- {
		s.fns[i]()
	}
	s.fns = nil
}

func (s *Scope) Closed() bool { return s.closed }
