package subtitle

import (
	"time"

	"navtitle/models"
)

// TransitionKind names one of the two opposing subtitle transitions.
type TransitionKind int

const (
	// TransitionAppear moves the subtitle from hidden to visible.
	TransitionAppear TransitionKind = iota
	// TransitionDisappear moves the subtitle from visible to hidden.
	TransitionDisappear
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionAppear:
		return "appear"
	case TransitionDisappear:
		return "disappear"
	default:
		return "unknown"
	}
}

// Animation is a running visual transition on a Surface.
type Animation interface {
	// Finish stops the animation and snaps the surface to its end state.
	Finish()
}

// Surface is the presentation target the coordinator drives: a subtitle text
// slot with a visibility that can be animated.
//
// Surface methods are called from inside the coordinator's critical section
// and must not call back into the coordinator. Toolkit hosts that require a
// UI thread should hop onto it asynchronously.
type Surface interface {
	// SetSubtitleText replaces the subtitle text without animating.
	SetSubtitleText(text string)
	// Animate starts the transition of kind over d, beginning from the
	// opposite end state.
	Animate(kind TransitionKind, d time.Duration) Animation
}

// Feedback emits a fire-and-forget haptic or notification signal.
type Feedback interface {
	Emit(category models.FeedbackCategory)
}

// FeedbackFunc adapts a function to Feedback.
type FeedbackFunc func(models.FeedbackCategory)

// Emit calls f(category).
func (f FeedbackFunc) Emit(category models.FeedbackCategory) {
	f(category)
}

// NopFeedback discards every signal.
type NopFeedback struct{}

// Emit does nothing.
func (NopFeedback) Emit(models.FeedbackCategory) {}

type nopAnimation struct{}

func (nopAnimation) Finish() {}

// NopSurface ignores all presentation calls. Useful for headless coordinators.
type NopSurface struct{}

func (NopSurface) SetSubtitleText(string) {}

func (NopSurface) Animate(TransitionKind, time.Duration) Animation { return nopAnimation{} }
