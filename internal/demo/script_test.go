package demo

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"navtitle/internal/config"
	"navtitle/internal/logger"
	"navtitle/internal/subtitle"
	"navtitle/internal/subtitle/subtitletest"
	"navtitle/models"
)

type recordingTarget struct {
	mu    sync.Mutex
	texts []string
}

func (r *recordingTarget) SetSubtitle(p *models.Payload, _ ...subtitle.SetOption) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, p.Text)
}

func TestBurstEvents(t *testing.T) {
	events := BurstEvents(config.BurstMessages)

	if len(events) != config.BurstMessages {
		t.Fatalf("len = %d, want %d", len(events), config.BurstMessages)
	}
	if events[0].Payload.Text != "Connecting…" {
		t.Errorf("first = %q", events[0].Payload.Text)
	}
	if last := events[len(events)-1].Payload; last.Kind != models.KindSuccess {
		t.Errorf("last kind = %s, want success", last.Kind)
	}
	for i, e := range events {
		if e.Payload == nil {
			t.Errorf("event %d has no payload", i)
		}
	}
}

func TestBurst_DeliversEveryEvent(t *testing.T) {
	target := &recordingTarget{}
	events := BurstEvents(config.BurstMessages)

	if err := Burst(context.Background(), target, events); err != nil {
		t.Fatalf("Burst() error = %v", err)
	}

	seen := map[string]int{}
	for _, text := range target.texts {
		seen[text]++
	}
	for _, e := range events {
		if seen[e.Payload.Text] != 1 {
			t.Errorf("%q delivered %d times, want 1", e.Payload.Text, seen[e.Payload.Text])
		}
	}
}

func TestBurst_IntoCoordinator(t *testing.T) {
	clock := subtitletest.NewManualScheduler()
	var shown []string
	c := subtitle.NewCoordinator(subtitle.NopSurface{}, subtitle.Options{
		Scheduler: clock,
		Logger:    logger.New(logger.LevelError, io.Discard),
		OnDisplay: func(m *models.Message) { shown = append(shown, m.Text()) },
	})
	defer c.Close()

	events := BurstEvents(config.BurstMessages)
	if err := Burst(context.Background(), c, events); err != nil {
		t.Fatal(err)
	}
	clock.Flush()

	if len(shown) != len(events) {
		t.Errorf("displayed %d messages, want %d: %v", len(shown), len(events), shown)
	}
}

func TestBurst_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := []Event{{Payload: models.Standard("late"), Delay: time.Hour}}
	if err := Burst(ctx, &recordingTarget{}, events); err == nil {
		t.Error("Burst() error = nil, want context error")
	}
}

func TestSample(t *testing.T) {
	for _, kind := range []models.Kind{models.KindStandard, models.KindSuccess, models.KindWarning, models.KindFailure} {
		p, _ := Sample(kind)
		if p == nil || p.Kind != kind {
			t.Errorf("Sample(%s) = %+v", kind, p)
		}
	}
}
