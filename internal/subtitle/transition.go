package subtitle

import "time"

// Phase is the visible state of the subtitle region.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseAppearing
	PhaseVisible
	PhaseDisappearing
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseAppearing:
		return "appearing"
	case PhaseVisible:
		return "visible"
	case PhaseDisappearing:
		return "disappearing"
	default:
		return "unknown"
	}
}

// TransitionState is the lifecycle of a single transition.
type TransitionState int

const (
	TransitionIdle TransitionState = iota
	TransitionRunning
	TransitionCompleted
)

// transition is one appear or disappear run. A fresh one is created for every
// start so no state carries over between messages.
type transition struct {
	kind  TransitionKind
	state TransitionState
	anim  Animation
	timer Timer
}

// finish snaps a running transition to its end state without firing its
// completion.
func (t *transition) finish() {
	if t == nil || t.state != TransitionRunning {
		return
	}
	t.timer.Stop()
	t.anim.Finish()
	t.state = TransitionCompleted
}

func (t *transition) running() bool {
	return t != nil && t.state == TransitionRunning
}

// TransitionController runs the appear and disappear transitions of the
// subtitle region so that at most one is running at any instant, and chains
// appear → hold → disappear → done.
//
// It is not safe for concurrent use: every method, and every callback it
// schedules, must run inside one serialized context.
type TransitionController struct {
	surface   Surface
	scheduler Scheduler
	duration  func() time.Duration

	display *transition
	hide    *transition

	holdTimer Timer
	cycle     uint64
	phase     Phase
}

// NewTransitionController creates a controller. duration is consulted at the
// start of every transition so toggling animations takes effect immediately.
func NewTransitionController(surface Surface, scheduler Scheduler, duration func() time.Duration) *TransitionController {
	return &TransitionController{
		surface:   surface,
		scheduler: scheduler,
		duration:  duration,
	}
}

// Phase returns the current phase.
func (c *TransitionController) Phase() Phase {
	return c.phase
}

// DisplayState returns the state of the current appear transition.
func (c *TransitionController) DisplayState() TransitionState {
	if c.display == nil {
		return TransitionIdle
	}
	return c.display.state
}

// HideState returns the state of the current disappear transition.
func (c *TransitionController) HideState() TransitionState {
	if c.hide == nil {
		return TransitionIdle
	}
	return c.hide.state
}

// ShowThenHideAfter cuts off whatever is animating, runs the appear
// transition, keeps the subtitle visible for hold, runs the disappear
// transition and then calls onFullyHidden.
func (c *TransitionController) ShowThenHideAfter(hold time.Duration, onFullyHidden func()) {
	c.ForceReset()
	cycle := c.cycle

	c.phase = PhaseAppearing
	c.display = c.start(TransitionAppear, func() {
		c.phase = PhaseVisible
		c.holdTimer = c.scheduler.AfterFunc(hold, func() {
			if cycle != c.cycle {
				return
			}
			c.holdTimer = nil
			c.runHide(onFullyHidden)
		})
	})
}

// HideImmediately skips any appear and hold, runs the disappear transition
// and then calls onFullyHidden. If nothing is showing, no transition runs and
// onFullyHidden is delivered on the next scheduler turn.
func (c *TransitionController) HideImmediately(onFullyHidden func()) {
	c.ForceReset()

	if c.phase == PhaseHidden {
		cycle := c.cycle
		c.holdTimer = c.scheduler.AfterFunc(0, func() {
			if cycle != c.cycle {
				return
			}
			c.holdTimer = nil
			onFullyHidden()
		})
		return
	}
	c.runHide(onFullyHidden)
}

// ForceReset stops any running transition and the pending hold, snapping the
// surface to the end state of whatever was running. Callbacks scheduled
// before the reset never fire.
func (c *TransitionController) ForceReset() {
	c.cycle++

	if c.holdTimer != nil {
		c.holdTimer.Stop()
		c.holdTimer = nil
	}

	switch {
	case c.display.running():
		c.display.finish()
		c.phase = PhaseVisible
	case c.hide.running():
		c.hide.finish()
		c.phase = PhaseHidden
	}
}

func (c *TransitionController) runHide(onFullyHidden func()) {
	c.phase = PhaseDisappearing
	c.hide = c.start(TransitionDisappear, func() {
		c.phase = PhaseHidden
		onFullyHidden()
	})
}

func (c *TransitionController) start(kind TransitionKind, done func()) *transition {
	d := c.duration()
	t := &transition{kind: kind, state: TransitionRunning}
	t.anim = c.surface.Animate(kind, d)
	t.timer = c.scheduler.AfterFunc(d, func() {
		// Stop can lose the race against a timer that already fired and is
		// waiting for the lock.
		if t.state != TransitionRunning {
			return
		}
		t.state = TransitionCompleted
		done()
	})
	return t
}
