package tui

import (
	"sync"
	"time"

	"navtitle/internal/config"
	"navtitle/internal/subtitle"
	"navtitle/models"
)

// Surface is a subtitle.Surface for the terminal. It keeps the subtitle state
// under its own lock and derives the fade from the clock, so the model only
// needs to read a Snapshot on every tick. Nothing here sends to the program:
// tea.Program.Send blocks and must not run inside the coordinator's lock.
type Surface struct {
	mu  sync.Mutex
	now func() time.Time

	text    string
	kind    models.Kind
	fade    *fade
	alpha   float64
	history []models.Message
}

type fade struct {
	kind  subtitle.TransitionKind
	start time.Time
	d     time.Duration
	done  bool
}

// Snapshot is what the subtitle line shows at one instant.
type Snapshot struct {
	Text    string
	Kind    models.Kind
	Alpha   float64 // 0 hidden, 1 fully visible
	History []models.Message
}

// NewSurface creates a hidden surface. now defaults to time.Now.
func NewSurface(now func() time.Time) *Surface {
	if now == nil {
		now = time.Now
	}
	return &Surface{now: now, kind: models.KindStandard}
}

// SetSubtitleText implements subtitle.Surface.
func (s *Surface) SetSubtitleText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Animate implements subtitle.Surface.
func (s *Surface) Animate(kind subtitle.TransitionKind, d time.Duration) subtitle.Animation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settleLocked()
	f := &fade{kind: kind, start: s.now(), d: d}
	if kind == subtitle.TransitionAppear {
		s.alpha = 0
	} else {
		s.alpha = 1
	}
	s.fade = f
	return &fadeHandle{s: s, f: f}
}

// Observe records a displayed message. Pass it as subtitle.Options.OnDisplay.
func (s *Surface) Observe(m *models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kind = m.Payload.Kind
	s.history = append(s.history, *m)
	if len(s.history) > config.TUIHistorySize {
		s.history = s.history[len(s.history)-config.TUIHistorySize:]
	}
}

// Snapshot returns the current state.
func (s *Surface) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settleLocked()
	history := make([]models.Message, len(s.history))
	copy(history, s.history)
	return Snapshot{
		Text:    s.text,
		Kind:    s.kind,
		Alpha:   s.alpha,
		History: history,
	}
}

// settleLocked advances alpha along the running fade.
func (s *Surface) settleLocked() {
	f := s.fade
	if f == nil || f.done {
		return
	}

	p := 1.0
	if f.d > 0 {
		p = float64(s.now().Sub(f.start)) / float64(f.d)
	}
	if p >= 1 {
		p = 1
		f.done = true
	}
	p = easeInOut(p)

	if f.kind == subtitle.TransitionAppear {
		s.alpha = p
	} else {
		s.alpha = 1 - p
	}
}

type fadeHandle struct {
	s *Surface
	f *fade
}

// Finish implements subtitle.Animation.
func (h *fadeHandle) Finish() {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.f.done {
		return
	}
	h.f.done = true
	if s.fade != h.f {
		return
	}
	if h.f.kind == subtitle.TransitionAppear {
		s.alpha = 1
	} else {
		s.alpha = 0
	}
}

// easeInOut matches the curve the window host uses.
func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return -1 + (4-2*p)*p
}
