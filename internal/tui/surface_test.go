package tui

import (
	"math"
	"testing"
	"time"

	"navtitle/internal/config"
	"navtitle/internal/subtitle"
	"navtitle/models"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time      { return c.t }
func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSurface_FadeFollowsClock(t *testing.T) {
	clock := newFakeClock()
	s := NewSurface(clock.now)

	s.SetSubtitleText("Saved")
	s.Animate(subtitle.TransitionAppear, 200*time.Millisecond)

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{100 * time.Millisecond, 0.5},
		{200 * time.Millisecond, 1},
		{time.Second, 1},
	}
	var elapsed time.Duration
	for _, tt := range tests {
		clock.add(tt.at - elapsed)
		elapsed = tt.at
		if got := s.Snapshot().Alpha; !near(got, tt.want) {
			t.Errorf("alpha at %v = %v, want %v", tt.at, got, tt.want)
		}
	}

	s.Animate(subtitle.TransitionDisappear, 200*time.Millisecond)
	if got := s.Snapshot().Alpha; got != 1 {
		t.Errorf("alpha at disappear start = %v, want 1", got)
	}
	clock.add(200 * time.Millisecond)
	if got := s.Snapshot().Alpha; got != 0 {
		t.Errorf("alpha at disappear end = %v, want 0", got)
	}
}

func TestSurface_FinishSnaps(t *testing.T) {
	clock := newFakeClock()
	s := NewSurface(clock.now)

	appear := s.Animate(subtitle.TransitionAppear, time.Hour)
	appear.Finish()
	if got := s.Snapshot().Alpha; got != 1 {
		t.Errorf("alpha after appear Finish = %v, want 1", got)
	}

	disappear := s.Animate(subtitle.TransitionDisappear, time.Hour)
	// a stale handle must not touch the running fade
	appear.Finish()
	if got := s.Snapshot().Alpha; got != 1 {
		t.Errorf("alpha after stale Finish = %v, want 1", got)
	}

	disappear.Finish()
	if got := s.Snapshot().Alpha; got != 0 {
		t.Errorf("alpha after disappear Finish = %v, want 0", got)
	}
}

func TestSurface_HistoryCapped(t *testing.T) {
	s := NewSurface(nil)

	for i := 0; i < config.TUIHistorySize+3; i++ {
		s.Observe(models.NewMessage(*models.Warning("w"), true, time.Second))
	}

	snap := s.Snapshot()
	if len(snap.History) != config.TUIHistorySize {
		t.Errorf("history = %d, want %d", len(snap.History), config.TUIHistorySize)
	}
	if snap.Kind != models.KindWarning {
		t.Errorf("Kind = %s, want warning", snap.Kind)
	}
}

func TestFadeColor(t *testing.T) {
	if got := fadeColor(colorRed, 0); got != colorBase {
		t.Errorf("fadeColor(0) = %s, want background", got)
	}
	if got := fadeColor(colorRed, 1); got != colorRed {
		t.Errorf("fadeColor(1) = %s, want %s", got, colorRed)
	}
	mid := fadeColor(colorRed, 0.5)
	if mid == colorBase || mid == colorRed {
		t.Errorf("fadeColor(0.5) = %s, want a blend", mid)
	}
}
