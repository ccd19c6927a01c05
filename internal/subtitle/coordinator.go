package subtitle

import (
	"sync"
	"time"

	"navtitle/internal/config"
	"navtitle/internal/logger"
	"navtitle/models"
)

// Options configures a Coordinator. Zero values select the defaults.
type Options struct {
	// Scheduler delivers the post-appear hold and transition completions.
	// Default: ClockScheduler
	Scheduler Scheduler

	// Feedback receives a signal when a message with feedback is shown.
	// Default: NopFeedback
	Feedback Feedback

	// AnimationDuration is the appear/disappear speed.
	// Default: config.DefaultAnimationDuration
	AnimationDuration time.Duration

	// DisableAnimations runs transitions with config.InstantAnimation.
	DisableAnimations bool

	// DefaultHideAfter is how long a message stays fully visible when the
	// caller does not pass HideAfter. Default: config.DefaultHideAfter
	DefaultHideAfter time.Duration

	// Metrics is optional.
	Metrics *Metrics

	// Logger defaults to the process logger named "subtitle".
	Logger *logger.Logger

	// OnDisplay is called when a message starts its display cycle. It runs
	// inside the coordinator's critical section and must not call back into
	// the coordinator.
	OnDisplay func(m *models.Message)

	// Now is the clock used for cycle timing metrics. Default: time.Now
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Scheduler == nil {
		o.Scheduler = ClockScheduler{}
	}
	if o.Feedback == nil {
		o.Feedback = NopFeedback{}
	}
	if o.AnimationDuration == 0 {
		o.AnimationDuration = config.DefaultAnimationDuration
	}
	if o.DefaultHideAfter == 0 {
		o.DefaultHideAfter = config.DefaultHideAfter
	}
	if o.Logger == nil {
		o.Logger = logger.Default().Named("subtitle")
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// OptionsFromConfig fills the timing fields of Options from user settings.
// Host-specific fields (Scheduler, Feedback, Metrics, Logger, OnDisplay) are
// left for the caller.
func OptionsFromConfig(cfg *models.Config) Options {
	return Options{
		AnimationDuration: cfg.AnimationDuration,
		DisableAnimations: !cfg.AnimationsEnabled,
		DefaultHideAfter:  cfg.HideAfter,
	}
}

type setOptions struct {
	feedback     bool
	hideAfter    time.Duration
	hideAfterSet bool
	clearQueue   bool
}

// SetOption adjusts a single SetSubtitle call.
type SetOption func(*setOptions)

// WithoutFeedback suppresses the feedback signal for this message.
func WithoutFeedback() SetOption {
	return func(o *setOptions) { o.feedback = false }
}

// HideAfter sets how long the message stays fully visible.
// Non-positive values are clamped to config.MinHideAfter.
func HideAfter(d time.Duration) SetOption {
	return func(o *setOptions) {
		o.hideAfter = d
		o.hideAfterSet = true
	}
}

// ClearQueue drops every pending message, interrupts the one on screen and
// shows this message next.
func ClearQueue() SetOption {
	return func(o *setOptions) { o.clearQueue = true }
}

// Coordinator is the entry point for showing transient subtitle messages.
// It is safe for concurrent use.
//
// All queue and transition mutation happens under one mutex. Scheduled
// continuations re-enter through the same mutex via a serializing scheduler;
// methods suffixed Locked expect it held and call each other directly, so the
// lock is never re-acquired on a single call path.
type Coordinator struct {
	mu sync.Mutex

	surface     Surface
	queue       *Queue
	transitions *TransitionController
	feedback    Feedback
	metrics     *Metrics
	log         *logger.Logger
	onDisplay   func(*models.Message)
	now         func() time.Time

	animationDuration time.Duration
	animationsEnabled bool
	defaultHideAfter  time.Duration

	current *models.Message
	shownAt time.Time
	closed  bool
}

// NewCoordinator creates a coordinator driving surface.
func NewCoordinator(surface Surface, opts Options) *Coordinator {
	opts = opts.withDefaults()

	c := &Coordinator{
		surface:           surface,
		queue:             NewQueue(),
		feedback:          opts.Feedback,
		metrics:           opts.Metrics,
		log:               opts.Logger,
		onDisplay:         opts.OnDisplay,
		now:               opts.Now,
		animationDuration: config.ClampAnimationDuration(opts.AnimationDuration),
		animationsEnabled: !opts.DisableAnimations,
		defaultHideAfter:  config.ClampHideAfter(opts.DefaultHideAfter),
	}
	if opts.AnimationDuration != c.animationDuration {
		c.log.Warn("animation duration %v out of range, using %v", opts.AnimationDuration, c.animationDuration)
	}

	serial := &serialScheduler{
		inner: opts.Scheduler,
		mu:    &c.mu,
		alive: func() bool { return !c.closed },
	}
	c.transitions = NewTransitionController(surface, serial, c.animationDurationLocked)
	return c
}

// SetSubtitle queues p for display. A nil payload clears the subtitle
// immediately without touching the queue.
func (c *Coordinator) SetSubtitle(p *models.Payload, opts ...SetOption) {
	o := setOptions{feedback: true}
	for _, opt := range opts {
		opt(&o)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if p == nil {
		c.clearLocked()
		return
	}

	hold := c.defaultHideAfter
	if o.hideAfterSet {
		hold = o.hideAfter
		if hold < config.MinHideAfter {
			c.log.Warn("hide-after %v below minimum, clamping to %v", hold, config.MinHideAfter)
		}
	}

	m := models.NewMessage(*p, o.feedback, hold)
	if o.clearQueue {
		dropped := c.queue.ResetAndEnqueue(m)
		c.metrics.recordDropped(dropped)
		c.log.Debug("message %s %q clears queue (dropped %d)", m.ShortID(), m.Text(), dropped)
	} else {
		c.queue.Enqueue(m)
		c.log.Debug("message %s %q enqueued (pending %d)", m.ShortID(), m.Text(), c.queue.Len())
	}
	c.metrics.recordEnqueue(m.Payload.Kind, c.queue.Len())

	c.displayNextLocked()
}

// Clear hides the subtitle now. Equivalent to SetSubtitle(nil).
func (c *Coordinator) Clear() {
	c.SetSubtitle(nil)
}

// Close stops all transitions and turns every pending callback into a no-op.
// Further calls are ignored.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.transitions.ForceReset()
	c.closed = true
	c.current = nil
	c.log.Debug("coordinator closed with %d pending", c.queue.Len())
}

// Current returns the message in its display cycle, or nil.
func (c *Coordinator) Current() *models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Pending returns the number of messages waiting behind the current one.
func (c *Coordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

// IsDisplaying reports whether a display cycle is in progress.
func (c *Coordinator) IsDisplaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.IsDisplaying()
}

// Phase returns the subtitle transition phase.
func (c *Coordinator) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transitions.Phase()
}

// SetAnimationsEnabled switches between animated and near-instant
// transitions. It applies from the next transition on.
func (c *Coordinator) SetAnimationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animationsEnabled = enabled
}

// AnimationsEnabled reports the current animation setting.
func (c *Coordinator) AnimationsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animationsEnabled
}

// SetDefaultHideAfter changes the hold used when SetSubtitle gets no HideAfter.
func (c *Coordinator) SetDefaultHideAfter(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultHideAfter = config.ClampHideAfter(d)
}

func (c *Coordinator) animationDurationLocked() time.Duration {
	if !c.animationsEnabled {
		return config.InstantAnimation
	}
	return c.animationDuration
}

func (c *Coordinator) clearLocked() {
	c.metrics.recordClear()
	c.log.Debug("clear (phase %s, pending %d)", c.transitions.Phase(), c.queue.Len())

	c.surface.SetSubtitleText("")
	c.transitions.HideImmediately(c.cycleFinishedLocked)
}

func (c *Coordinator) displayNextLocked() {
	m := c.queue.DequeueNext()
	if m == nil {
		return
	}
	c.beginDisplayLocked(m)
}

func (c *Coordinator) beginDisplayLocked(m *models.Message) {
	c.current = m
	c.shownAt = c.now()

	c.surface.SetSubtitleText(m.Text())
	c.transitions.ShowThenHideAfter(m.Duration, c.cycleFinishedLocked)
	c.metrics.recordDisplay(m.Payload.Kind, c.queue.Len())
	c.log.Debug("display %s %q for %v", m.ShortID(), m.Text(), m.Duration)

	if m.GenerateFeedback {
		if category := m.Payload.FeedbackCategory(); category != models.FeedbackNone {
			c.feedback.Emit(category)
			c.metrics.recordFeedback(category)
		}
	}
	if c.onDisplay != nil {
		c.onDisplay(m)
	}
}

func (c *Coordinator) cycleFinishedLocked() {
	if c.current != nil {
		c.metrics.recordCycle(c.now().Sub(c.shownAt).Seconds())
		c.log.Debug("hidden %s", c.current.ShortID())
		c.current = nil
	}
	c.queue.MarkIdle()
	c.displayNextLocked()
}
