// Package config provides centralized timing and presentation constants for the title view.
package config

import "time"

// Subtitle transition timing
const (
	// DefaultAnimationDuration is how long the appear and disappear transitions take.
	DefaultAnimationDuration = 250 * time.Millisecond

	// InstantAnimation replaces the animation duration when animations are disabled.
	// The transition still runs so completion callbacks fire the same way.
	InstantAnimation = time.Millisecond

	// MaxAnimationDuration caps configured transition speed.
	MaxAnimationDuration = 2 * time.Second
)

// Subtitle hold durations (time fully visible before the disappear transition)
const (
	DefaultHideAfter = 3 * time.Second
	LongHideAfter    = 5 * time.Second // failures and anything the user must read
	MinHideAfter     = 100 * time.Millisecond
)

// Title view layout
const (
	TitleTextSize    float32 = 16
	SubtitleTextSize float32 = 12
	TitleSubtitleGap float32 = 2
	DropdownIconSize float32 = 14
	TitleViewPadding float32 = 6
)

// Terminal host
const (
	TUITickInterval = 33 * time.Millisecond // ~30fps fade steps
	TUIMinWidth     = 24
	TUIHistorySize  = 8
)

// Burst demo producers
const (
	BurstMessages = 5
	BurstWorkers  = 3
)

// Metrics
const (
	MetricsNamespace = "navtitle"
	MetricsSubsystem = "subtitle"
)

// ClampAnimationDuration keeps d within [InstantAnimation, MaxAnimationDuration].
func ClampAnimationDuration(d time.Duration) time.Duration {
	return maxDuration(InstantAnimation, minDuration(d, MaxAnimationDuration))
}

// ClampHideAfter keeps d at or above MinHideAfter.
func ClampHideAfter(d time.Duration) time.Duration {
	return maxDuration(d, MinHideAfter)
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
