package subtitletest

import (
	"fmt"
	"sync"
	"time"

	"navtitle/internal/subtitle"
	"navtitle/models"
)

// Sample is what a RecordingSurface showed at a moment.
type Sample struct {
	At      time.Duration
	Text    string
	Opacity float32 // 0 hidden, 1 visible; 0.5 while a transition runs
}

// RecordingSurface is a subtitle.Surface that records every call. Animations
// end on their own through the scheduler, like a real animation engine.
type RecordingSurface struct {
	mu      sync.Mutex
	clock   *ManualScheduler
	text    string
	opacity float32
	current *recordingAnimation
	events  []string
	samples []Sample
}

// NewRecordingSurface creates a hidden, empty surface on clock.
func NewRecordingSurface(clock *ManualScheduler) *RecordingSurface {
	return &RecordingSurface{clock: clock}
}

type recordingAnimation struct {
	s     *RecordingSurface
	kind  subtitle.TransitionKind
	done  bool
	timer subtitle.Timer
}

// SetSubtitleText implements subtitle.Surface.
func (s *RecordingSurface) SetSubtitleText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.events = append(s.events, fmt.Sprintf("text %q", text))
	s.sampleLocked()
}

// Animate implements subtitle.Surface.
func (s *RecordingSurface) Animate(kind subtitle.TransitionKind, d time.Duration) subtitle.Animation {
	s.mu.Lock()
	a := &recordingAnimation{s: s, kind: kind}
	s.current = a
	s.opacity = 0.5
	s.events = append(s.events, "start "+kind.String())
	s.sampleLocked()
	s.mu.Unlock()

	a.timer = s.clock.AfterFunc(d, func() { a.end("end") })
	return a
}

// Finish implements subtitle.Animation.
func (a *recordingAnimation) Finish() {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.end("snap")
}

func (a *recordingAnimation) end(verb string) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.done {
		return
	}
	a.done = true
	if a.kind == subtitle.TransitionAppear {
		s.opacity = 1
	} else {
		s.opacity = 0
	}
	if s.current == a {
		s.current = nil
	}
	s.events = append(s.events, verb+" "+a.kind.String())
	s.sampleLocked()
}

func (s *RecordingSurface) sampleLocked() {
	s.samples = append(s.samples, Sample{At: s.clock.Now(), Text: s.text, Opacity: s.opacity})
}

// Text returns the current subtitle text.
func (s *RecordingSurface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Opacity returns 0 when hidden, 1 when fully shown and 0.5 mid-transition.
func (s *RecordingSurface) Opacity() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opacity
}

// Showing reports whether any part of the subtitle is on screen.
func (s *RecordingSurface) Showing() bool {
	return s.Opacity() > 0
}

// Events returns the call log, e.g. `text "Done"`, "start appear", "snap disappear".
func (s *RecordingSurface) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	copy(out, s.events)
	return out
}

// Samples returns the state after every recorded change.
func (s *RecordingSurface) Samples() []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// RecordingFeedback collects emitted feedback categories.
type RecordingFeedback struct {
	mu         sync.Mutex
	categories []models.FeedbackCategory
}

// Emit implements subtitle.Feedback.
func (f *RecordingFeedback) Emit(category models.FeedbackCategory) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, category)
}

// Categories returns every emitted category in order.
func (f *RecordingFeedback) Categories() []models.FeedbackCategory {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.FeedbackCategory, len(f.categories))
	copy(out, f.categories)
	return out
}
