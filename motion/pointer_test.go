package motion

import (
	"errors"
	"testing"
)

func cursorTargets() (dot, ring *Props) {
	dot = NewProps(map[string]Value{
		PropX: Num(0), PropY: Num(0), PropScale: Num(1), PropOpacity: Num(1),
		PropColor: MustColor("rgba(34,197,94,1)"),
	})
	ring = NewProps(map[string]Value{
		PropX: Num(0), PropY: Num(0), PropScale: Num(0.6), PropOpacity: Num(0),
	})
	return dot, ring
}

func TestPointerFollowerSequence(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	src := &fakeSource{}
	att, err := e.PointerFollower().Attach(FollowerConfig{
		Dot:         dot,
		Ring:        ring,
		Source:      src,
		Interactive: func(el any) bool { return el == "link" },
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	src.emit(PointerEvent{Kind: PointerMove, X: 100, Y: 100})
	e.Tick(1.0 / 60)
	if x := dot.Number(PropX); x <= 0 || x >= 100 {
		t.Errorf("Expected the dot to trail the pointer, got x=%v", x)
	}
	run(e, 0.5)
	if dot.Number(PropX) != 100 || dot.Number(PropY) != 100 || ring.Number(PropX) != 100 {
		t.Errorf("Expected followers at (100,100), got dot %+v ring %+v", dot, ring)
	}

	src.emit(PointerEvent{Kind: PointerEnter, Element: "link"})
	run(e, 0.5)
	if dot.Number(PropScale) != 3.2 || ring.Number(PropOpacity) != 1 || ring.Number(PropScale) != 1 {
		t.Errorf("Expected hover state, got dot scale %v ring %+v", dot.Number(PropScale), ring)
	}
	if !att.Hovering() {
		t.Errorf("Expected Hovering() after entering a link")
	}
	if c, _ := dot.Get(PropColor); c.C.G != 185 {
		t.Errorf("Expected hover colour, got %v", c)
	}

	src.emit(PointerEvent{Kind: PointerLeave, Element: "link"})
	run(e, 0.5)
	if dot.Number(PropScale) != 1 || ring.Number(PropScale) != 0.6 || ring.Number(PropOpacity) != 0 {
		t.Errorf("Expected rest state, got dot scale %v ring %+v", dot.Number(PropScale), ring)
	}

	src.emit(PointerEvent{Kind: PointerOut})
	run(e, 0.5)
	if dot.Number(PropOpacity) != 0 {
		t.Errorf("Expected the dot to fade out, got %v", dot.Number(PropOpacity))
	}
	src.emit(PointerEvent{Kind: PointerOver})
	run(e, 0.5)
	if dot.Number(PropOpacity) != 1 || ring.Number(PropOpacity) != 0 {
		t.Errorf("Expected dot back and ring hidden, got %v and %v", dot.Number(PropOpacity), ring.Number(PropOpacity))
	}
}

func TestPointerFollowerIgnoresPlainElements(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	src := &fakeSource{}
	att, _ := e.PointerFollower().Attach(FollowerConfig{
		Dot: dot, Ring: ring, Source: src,
		Interactive: func(el any) bool { return el == "button" },
	})

	src.emit(PointerEvent{Kind: PointerEnter, Element: "paragraph"})
	run(e, 0.5)
	if att.Hovering() || dot.Number(PropScale) != 1 {
		t.Errorf("Expected a non-interactive element to be ignored")
	}
	src.emit(PointerEvent{Kind: PointerLeave, Element: "paragraph"})
	if e.Active() != 0 {
		t.Errorf("Expected no tweens for an unmatched leave, got %d", e.Active())
	}
}

func TestPointerFollowerIgnoresUncomparableElements(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	src := &fakeSource{}
	att, _ := e.PointerFollower().Attach(FollowerConfig{Dot: dot, Ring: ring, Source: src})

	src.emit(PointerEvent{Kind: PointerEnter, Element: map[string]int{"a": 1}})
	if att.Hovering() {
		t.Errorf("Expected an uncomparable element to be ignored")
	}

	button := &struct{ name string }{"button"}
	src.emit(PointerEvent{Kind: PointerEnter, Element: button})
	src.emit(PointerEvent{Kind: PointerLeave, Element: []int{1}})
	if !att.Hovering() {
		t.Errorf("Expected an unrelated leave to keep the hover")
	}
	src.emit(PointerEvent{Kind: PointerLeave, Element: button})
	if att.Hovering() {
		t.Errorf("Expected leaving the hovered element to end the hover")
	}
}

func TestPointerFollowerOverwritesMoves(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	src := &fakeSource{}
	e.PointerFollower().Attach(FollowerConfig{Dot: dot, Ring: ring, Source: src})

	src.emit(PointerEvent{Kind: PointerMove, X: 100, Y: 100})
	src.emit(PointerEvent{Kind: PointerMove, X: 200, Y: 50})
	if n := e.Active(); n != 4 {
		t.Errorf("Expected one tween per follower axis, got %d", n)
	}
	run(e, 0.5)
	if dot.Number(PropX) != 200 || dot.Number(PropY) != 50 {
		t.Errorf("Expected the latest move to win, got (%v,%v)", dot.Number(PropX), dot.Number(PropY))
	}
}

func TestPointerFollowerDetach(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	src := &fakeSource{}
	att, _ := e.PointerFollower().Attach(FollowerConfig{Dot: dot, Ring: ring, Source: src})
	if src.subscribed != 1 {
		t.Errorf("Expected one subscription, got %d", src.subscribed)
	}

	src.emit(PointerEvent{Kind: PointerMove, X: 100, Y: 100})
	att.Detach()
	att.Detach()
	if src.unsubscribe != 1 {
		t.Errorf("Expected exactly one unsubscribe, got %d", src.unsubscribe)
	}
	if e.Active() != 0 {
		t.Errorf("Expected follower tweens to stop on detach, got %d", e.Active())
	}
	src.emit(PointerEvent{Kind: PointerMove, X: 300, Y: 300})
	run(e, 0.5)
	if dot.Number(PropX) == 300 {
		t.Errorf("Expected a detached follower to stop tracking")
	}
}

func TestPointerFollowerDisabled(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	src := &fakeSource{}
	att, _ := e.PointerFollower().Attach(FollowerConfig{Dot: dot, Ring: ring, Source: src})
	att.SetEnabled(false)
	src.emit(PointerEvent{Kind: PointerMove, X: 100, Y: 100})
	run(e, 0.5)
	if dot.Number(PropX) != 0 {
		t.Errorf("Expected a disabled follower to stay put, got %v", dot.Number(PropX))
	}
}

func TestPointerFollowerConfigErrors(t *testing.T) {
	e := testEngine()
	dot, ring := cursorTargets()
	tests := []struct {
		name string
		cfg  FollowerConfig
	}{
		{"Missing ring", FollowerConfig{Dot: dot, Source: &fakeSource{}}},
		{"Missing source", FollowerConfig{Dot: dot, Ring: ring}},
		{"Negative lag", FollowerConfig{Dot: dot, Ring: ring, Source: &fakeSource{}, DotLag: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.PointerFollower().Attach(tt.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
