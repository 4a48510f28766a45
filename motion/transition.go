package motion

import (
	"fmt"
	"sort"
)

// TransitionState is the lifecycle of one Transitioner run.
type TransitionState uint8

const (
	Idle TransitionState = iota
	Running
	Interrupted
	Complete
)

func (s TransitionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Interrupted:
		return "interrupted"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("TransitionState(%d)", uint8(s))
}

// Step is one stage of a transition. Build runs when the run starts, so tweens that read live
// values pick up wherever an interrupted run left the targets.
type Step struct {
	Build  func() (Animation, error)
	Offset Offset
}

// TweenStep builds a paused tween on target when the run starts.
func (e *Engine) TweenStep(target Target, spec PropertySpec, opts TweenOptions, offset Offset) Step {
	return Step{
		Offset: offset,
		Build: func() (Animation, error) {
			opts.Paused = true
			return e.Tween(target, spec, opts)
		},
	}
}

// SetStep writes vals instantly at offset.
func (e *Engine) SetStep(target Target, vals map[string]Value, offset Offset) Step {
	return e.TweenStep(target, ToValues(vals), TweenOptions{}, offset)
}

// CallStep runs fn at offset.
func (e *Engine) CallStep(fn func(), offset Offset) Step {
	return Step{
		Offset: offset,
		Build: func() (Animation, error) {
			return e.Tween(callTarget{}, PropertySpec{"call": To(Num(1))}, TweenOptions{Paused: true, OnStart: fn})
		},
	}
}

type callTarget struct{}

func (callTarget) Get(string) (Value, bool) { return Num(0), true }
func (callTarget) Set(string, Value)        {}

// Transitioner drives multi-step interactive transitions with at most one active run.
type Transitioner struct {
	e     *Engine
	scope Target
	state TransitionState
	cur   *Timeline
	runs  uint64

	// OnStateChange observes every state change.
	OnStateChange func(TransitionState)
}

// Transitioner creates a controller. scope is informational and may be nil.
func (e *Engine) Transitioner(scope Target) *Transitioner {
	return &Transitioner{e: e, scope: scope}
}

func (tr *Transitioner) Scope() Target          { return tr.scope }
func (tr *Transitioner) State() TransitionState { return tr.state }
func (tr *Transitioner) IsRunning() bool        { return tr.state == Running }

// Runs returns how many runs have been started.
func (tr *Transitioner) Runs() uint64 { return tr.runs }

// Run interrupts any active run, leaving its targets where they are, then builds steps into a
// fresh timeline and plays it.
func (tr *Transitioner) Run(steps ...Step) error {
	if tr.state == Running {
		tr.interrupt()
	}

	tl := tr.e.Timeline(TimelineOptions{})
	for i, st := range steps {
		if st.Build == nil {
			tl.Kill()
			return configErr("transition", "steps", "step %d has no builder", i)
		}
		a, err := st.Build()
		if err != nil {
			tl.Kill()
			return fmt.Errorf("transition step %d: %w", i, err)
		}
		if err := tl.Append(a, st.Offset); err != nil {
			a.Kill()
			tl.Kill()
			return fmt.Errorf("transition step %d: %w", i, err)
		}
	}
	if err := checkOverlaps(tl); err != nil {
		tl.Kill()
		return err
	}

	tl.opts.OnComplete = func() {
		if tr.cur == tl {
			tr.cur = nil
			tr.setState(Complete)
		}
	}
	tr.cur = tl
	tr.runs++
	tr.setState(Running)
	tl.Play()
	return nil
}

// Cancel interrupts the active run, if any.
func (tr *Transitioner) Cancel() {
	if tr.state == Running {
		tr.interrupt()
	}
}

// Kill is Cancel, so a Transitioner can be added to a Scope.
func (tr *Transitioner) Kill() { tr.Cancel() }

func (tr *Transitioner) interrupt() {
	if tr.cur != nil {
		tr.cur.Kill()
		tr.cur = nil
	}
	tr.setState(Interrupted)
}

func (tr *Transitioner) setState(s TransitionState) {
	if tr.state == s {
		return
	}
	tr.state = s
	if tr.OnStateChange != nil {
		tr.OnStateChange(s)
	}
}

// touch is one property write interval of a tween, in timeline time.
type touch struct {
	target     Target
	prop       string
	start, end float64
}

type touchKey struct {
	target Target
	prop   string
}

// checkOverlaps rejects runs where two steps animate the same target property at the same time.
// Instant sets only conflict when they land strictly inside another step's interval.
func checkOverlaps(tl *Timeline) error {
	var all []touch
	tl.touches(0, &all)
	byKey := make(map[touchKey][]touch)
	for _, t := range all {
		if _, ok := t.target.(callTarget); ok {
			continue
		}
		k := touchKey{t.target, t.prop}
		byKey[k] = append(byKey[k], t)
	}
	for k, ts := range byKey {
		sort.Slice(ts, func(i, j int) bool {
			if ts[i].start != ts[j].start {
				return ts[i].start < ts[j].start
			}
			return ts[i].end < ts[j].end
		})
		for i := 1; i < len(ts); i++ {
			if ts[i].start < ts[i-1].end {
				return configErr("transition", k.prop, "two steps animate it concurrently (%v-%v and %v-%v)",
					ts[i-1].start, ts[i-1].end, ts[i].start, ts[i].end)
			}
		}
	}
	return nil
}
