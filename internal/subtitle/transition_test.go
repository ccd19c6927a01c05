package subtitle_test

import (
	"testing"
	"time"

	"navtitle/internal/subtitle"
	"navtitle/internal/subtitle/subtitletest"
)

const anim = 250 * time.Millisecond

func newController() (*subtitle.TransitionController, *subtitletest.ManualScheduler, *subtitletest.RecordingSurface) {
	clock := subtitletest.NewManualScheduler()
	surface := subtitletest.NewRecordingSurface(clock)
	c := subtitle.NewTransitionController(surface, clock, func() time.Duration { return anim })
	return c, clock, surface
}

func indexOf(events []string, want string) int {
	for i, e := range events {
		if e == want {
			return i
		}
	}
	return -1
}

func TestTransitionController_ShowThenHideAfter(t *testing.T) {
	c, clock, surface := newController()
	hidden := 0

	c.ShowThenHideAfter(time.Second, func() { hidden++ })

	if c.Phase() != subtitle.PhaseAppearing {
		t.Fatalf("Phase() = %s, want appearing", c.Phase())
	}
	if c.DisplayState() != subtitle.TransitionRunning {
		t.Errorf("DisplayState() = %v, want running", c.DisplayState())
	}

	clock.Advance(anim)
	if c.Phase() != subtitle.PhaseVisible {
		t.Errorf("Phase() after appear = %s, want visible", c.Phase())
	}
	if c.DisplayState() != subtitle.TransitionCompleted {
		t.Errorf("DisplayState() after appear = %v, want completed", c.DisplayState())
	}
	if surface.Opacity() != 1 {
		t.Errorf("Opacity() = %v, want 1", surface.Opacity())
	}

	clock.Advance(time.Second)
	if c.Phase() != subtitle.PhaseDisappearing {
		t.Errorf("Phase() after hold = %s, want disappearing", c.Phase())
	}
	if c.HideState() != subtitle.TransitionRunning {
		t.Errorf("HideState() = %v, want running", c.HideState())
	}
	if hidden != 0 {
		t.Errorf("onFullyHidden called %d times before disappear finished", hidden)
	}

	clock.Advance(anim)
	if c.Phase() != subtitle.PhaseHidden {
		t.Errorf("Phase() = %s, want hidden", c.Phase())
	}
	if hidden != 1 {
		t.Errorf("onFullyHidden called %d times, want 1", hidden)
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d timers left, want 0", clock.Pending())
	}
}

func TestTransitionController_ShowInterruptsRunningHide(t *testing.T) {
	c, clock, surface := newController()
	firstHidden, secondHidden := 0, 0

	c.ShowThenHideAfter(time.Second, func() { firstHidden++ })
	clock.Advance(anim + time.Second + anim/2) // mid-disappear

	if c.HideState() != subtitle.TransitionRunning {
		t.Fatalf("HideState() = %v, want running", c.HideState())
	}

	c.ShowThenHideAfter(time.Second, func() { secondHidden++ })

	if c.HideState() != subtitle.TransitionCompleted {
		t.Errorf("HideState() = %v, want completed after reset", c.HideState())
	}
	if c.DisplayState() != subtitle.TransitionRunning {
		t.Errorf("DisplayState() = %v, want running", c.DisplayState())
	}

	events := surface.Events()
	snap := indexOf(events, "snap disappear")
	if snap < 0 {
		t.Fatalf("events = %v, want a snapped disappear", events)
	}
	if last := events[len(events)-1]; last != "start appear" {
		t.Errorf("last event = %q, want start appear after snap", last)
	}

	clock.Flush()
	if firstHidden != 0 {
		t.Errorf("interrupted cycle completed %d times, want 0", firstHidden)
	}
	if secondHidden != 1 {
		t.Errorf("second cycle completed %d times, want 1", secondHidden)
	}
}

func TestTransitionController_NeverTwoRunning(t *testing.T) {
	c, clock, _ := newController()

	check := func(stage string) {
		t.Helper()
		if c.DisplayState() == subtitle.TransitionRunning && c.HideState() == subtitle.TransitionRunning {
			t.Errorf("%s: both transitions running", stage)
		}
	}

	c.ShowThenHideAfter(300*time.Millisecond, func() {})
	for i := 0; i < 20; i++ {
		clock.Advance(50 * time.Millisecond)
		check("tick")
		if i%7 == 3 {
			c.ShowThenHideAfter(300*time.Millisecond, func() {})
			check("restart")
		}
		if i%11 == 5 {
			c.HideImmediately(func() {})
			check("hide")
		}
	}
}

func TestTransitionController_HideImmediatelyWhenHidden(t *testing.T) {
	c, clock, surface := newController()
	hidden := 0

	c.HideImmediately(func() { hidden++ })

	if hidden != 0 {
		t.Error("onFullyHidden ran synchronously, want deferred")
	}
	clock.Advance(0)
	if hidden != 1 {
		t.Errorf("onFullyHidden called %d times, want 1", hidden)
	}
	if indexOf(surface.Events(), "start disappear") >= 0 {
		t.Errorf("events = %v, want no disappear on hidden surface", surface.Events())
	}
}

func TestTransitionController_HideImmediatelySkipsHold(t *testing.T) {
	c, clock, _ := newController()
	shown, cleared := 0, 0

	c.ShowThenHideAfter(5*time.Second, func() { shown++ })
	clock.Advance(anim + 100*time.Millisecond)

	c.HideImmediately(func() { cleared++ })
	if c.Phase() != subtitle.PhaseDisappearing {
		t.Errorf("Phase() = %s, want disappearing", c.Phase())
	}

	clock.Advance(anim)
	if cleared != 1 {
		t.Errorf("clear completion called %d times, want 1", cleared)
	}

	clock.Flush()
	if shown != 0 {
		t.Errorf("abandoned display cycle completed %d times, want 0", shown)
	}
}

func TestTransitionController_ForceResetSnapsAndCancels(t *testing.T) {
	c, clock, surface := newController()
	hidden := 0

	c.ShowThenHideAfter(time.Second, func() { hidden++ })
	clock.Advance(anim / 2)

	c.ForceReset()

	if c.DisplayState() != subtitle.TransitionCompleted {
		t.Errorf("DisplayState() = %v, want completed", c.DisplayState())
	}
	if c.Phase() != subtitle.PhaseVisible {
		t.Errorf("Phase() = %s, want visible", c.Phase())
	}
	if surface.Opacity() != 1 {
		t.Errorf("Opacity() = %v, want 1 after snapping appear", surface.Opacity())
	}

	clock.Advance(10 * time.Second)
	if hidden != 0 {
		t.Errorf("onFullyHidden called %d times after reset, want 0", hidden)
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase subtitle.Phase
		want  string
	}{
		{subtitle.PhaseHidden, "hidden"},
		{subtitle.PhaseAppearing, "appearing"},
		{subtitle.PhaseVisible, "visible"},
		{subtitle.PhaseDisappearing, "disappearing"},
		{subtitle.Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
