// Package demo holds the scripted status events shared by the window and
// terminal hosts.
package demo

import (
	"context"
	"fmt"
	"time"

	"navtitle/internal/config"
	"navtitle/internal/subtitle"
	"navtitle/internal/worker"
	"navtitle/models"
)

// Target receives subtitle messages. *subtitle.Coordinator and
// *widgets.TitleView both satisfy it.
type Target interface {
	SetSubtitle(p *models.Payload, opts ...subtitle.SetOption)
}

// Event is one scripted status message.
type Event struct {
	Payload   *models.Payload
	HideAfter time.Duration
	// Delay before the producer sends it
	Delay time.Duration
}

// BurstEvents returns n events in the order a sync job would report them.
func BurstEvents(n int) []Event {
	events := make([]Event, n)
	for i := range events {
		var p *models.Payload
		switch {
		case i == 0:
			p = models.Standard("Connecting…")
		case i == n-1:
			p = models.Success("All caught up")
		case i%4 == 3:
			p = models.Warning(fmt.Sprintf("Retrying batch %d", i))
		default:
			p = models.Standard(fmt.Sprintf("Fetched batch %d of %d", i, n-2))
		}
		events[i] = Event{
			Payload:   p,
			HideAfter: time.Second,
			Delay:     time.Duration(i) * 15 * time.Millisecond,
		}
	}
	return events
}

// Burst sends events to target from config.BurstWorkers goroutines at once.
// Arrival order across producers is not fixed; every event is displayed
// exactly once in the order the coordinator received it.
func Burst(ctx context.Context, target Target, events []Event) error {
	_, err := worker.Process(ctx, events, config.BurstWorkers, func(ctx context.Context, job worker.Job[Event]) (struct{}, error) {
		select {
		case <-time.After(job.Data.Delay):
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
		target.SetSubtitle(job.Data.Payload, subtitle.HideAfter(job.Data.HideAfter))
		return struct{}{}, nil
	}, nil)
	return err
}

// Sample returns a one-off payload of kind, as the demo buttons send.
func Sample(kind models.Kind) (*models.Payload, []subtitle.SetOption) {
	switch kind {
	case models.KindSuccess:
		return models.Success("Saved"), nil
	case models.KindWarning:
		return models.Warning("Connection is slow"), nil
	case models.KindFailure:
		return models.Failure("Sync failed"), []subtitle.SetOption{subtitle.HideAfter(config.LongHideAfter)}
	default:
		return models.Standard("Syncing…"), nil
	}
}

// Interrupt returns a message that replaces everything queued.
func Interrupt() (*models.Payload, []subtitle.SetOption) {
	return models.Failure("Offline"), []subtitle.SetOption{subtitle.ClearQueue(), subtitle.HideAfter(config.LongHideAfter)}
}
