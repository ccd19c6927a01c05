package widgets

import (
	"image/color"
	"io"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"navtitle/internal/logger"
	"navtitle/internal/subtitle"
	"navtitle/internal/subtitle/subtitletest"
	"navtitle/models"
	apptheme "navtitle/ui/theme"
)

func newTestTitleView(t *testing.T) (*TitleView, *subtitletest.ManualScheduler) {
	t.Helper()
	a := test.NewApp()
	a.Settings().SetTheme(&apptheme.NavTitleTheme{})

	clock := subtitletest.NewManualScheduler()
	v := NewTitleView("Inbox", subtitle.Options{
		Scheduler: clock,
		Logger:    logger.New(logger.LevelError, io.Discard),
	})
	t.Cleanup(v.Close)
	return v, clock
}

func renderer(v *TitleView) *titleViewRenderer {
	return test.WidgetRenderer(v).(*titleViewRenderer)
}

func TestTitleView_Title(t *testing.T) {
	v, _ := newTestTitleView(t)
	r := renderer(v)

	if r.title.Text != "Inbox" {
		t.Errorf("title text = %q, want Inbox", r.title.Text)
	}

	v.SetTitle("Archive")
	if got := v.Title(); got != "Archive" {
		t.Errorf("Title() = %q, want Archive", got)
	}
	if r.title.Text != "Archive" {
		t.Errorf("rendered title = %q, want Archive", r.title.Text)
	}
}

func TestTitleView_SubtitleQueue(t *testing.T) {
	v, clock := newTestTitleView(t)
	r := renderer(v)

	v.SetSubtitle(models.Standard("Syncing…"), subtitle.HideAfter(time.Second))
	v.SetSubtitle(models.Failure("Offline"), subtitle.HideAfter(time.Second))

	if got := v.SubtitleText(); got != "Syncing…" {
		t.Fatalf("SubtitleText() = %q, want Syncing…", got)
	}
	if got := v.Coordinator().Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}

	clock.Advance(time.Second + 2*250*time.Millisecond)

	if got := v.SubtitleText(); got != "Offline" {
		t.Fatalf("SubtitleText() = %q, want Offline", got)
	}
	if r.subtitle.Text != "Offline" {
		t.Errorf("rendered subtitle = %q, want Offline", r.subtitle.Text)
	}
	c, ok := r.subtitle.Color.(color.NRGBA)
	if !ok {
		t.Fatalf("subtitle color is %T, want color.NRGBA", r.subtitle.Color)
	}
	if c.R != apptheme.ColorError.R || c.G != apptheme.ColorError.G || c.B != apptheme.ColorError.B {
		t.Errorf("subtitle color = %v, want failure red", c)
	}
}

func TestTitleView_Clear(t *testing.T) {
	v, clock := newTestTitleView(t)

	v.SetSubtitle(models.Success("Saved"))
	clock.Advance(100 * time.Millisecond)
	v.SetSubtitle(nil)

	if got := v.SubtitleText(); got != "" {
		t.Errorf("SubtitleText() = %q, want empty", got)
	}

	clock.Flush()
	if v.Coordinator().IsDisplaying() {
		t.Error("IsDisplaying() = true after clear finished")
	}
}

func TestTitleView_Close(t *testing.T) {
	v, clock := newTestTitleView(t)

	v.Close()
	v.SetSubtitle(models.Standard("late"))
	clock.Flush()

	if got := v.SubtitleText(); got != "" {
		t.Errorf("SubtitleText() = %q after Close, want empty", got)
	}
}

func TestTitleView_DropdownTapped(t *testing.T) {
	v, _ := newTestTitleView(t)
	r := renderer(v)

	taps := 0
	cancel := v.OnDropdownTapped(func() { taps++ })
	other := 0
	v.OnDropdownTapped(func() { other++ })

	test.Tap(r.dropdown)
	if taps != 1 || other != 1 {
		t.Fatalf("taps = %d/%d, want 1/1", taps, other)
	}

	cancel()
	test.Tap(r.dropdown)
	if taps != 1 {
		t.Errorf("cancelled listener called %d times, want 1", taps)
	}
	if other != 2 {
		t.Errorf("remaining listener called %d times, want 2", other)
	}
}

func TestTitleView_DropdownVisible(t *testing.T) {
	v, _ := newTestTitleView(t)
	r := renderer(v)

	if got := len(r.Objects()); got != 3 {
		t.Errorf("Objects() = %d, want 3 with dropdown", got)
	}

	v.SetDropdownVisible(false)
	if v.DropdownVisible() {
		t.Error("DropdownVisible() = true")
	}
	if got := len(r.Objects()); got != 2 {
		t.Errorf("Objects() = %d, want 2 without dropdown", got)
	}

	v.SetDropdownVisible(true)
	withDropdown := r.MinSize()
	v.SetDropdownVisible(false)
	if r.MinSize().Height != withDropdown.Height {
		t.Errorf("MinSize height changed with dropdown: %v vs %v", r.MinSize(), withDropdown)
	}
}

func TestFadeAnimation_FinishSnaps(t *testing.T) {
	v, _ := newTestTitleView(t)
	s := &titleSurface{view: v}

	s.Animate(subtitle.TransitionAppear, time.Hour).Finish()
	if got := v.SubtitleAlpha(); got != 1 {
		t.Errorf("alpha after appear Finish = %v, want 1", got)
	}

	anim := s.Animate(subtitle.TransitionDisappear, time.Hour)
	anim.Finish()
	anim.Finish()
	if got := v.SubtitleAlpha(); got != 0 {
		t.Errorf("alpha after disappear Finish = %v, want 0", got)
	}
}
