package subtitle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"navtitle/internal/config"
	"navtitle/models"
)

// MetricsConfig configures coordinator metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "navtitle").
	Namespace string

	// Subsystem is the metrics subsystem (default: "subtitle").
	Subsystem string

	// ConstLabels are added to every metric, e.g. {"view": "inbox"}.
	ConstLabels prometheus.Labels

	// Registry is where the metrics are registered.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics records subtitle activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	enqueued     *prometheus.CounterVec
	displayed    *prometheus.CounterVec
	dropped      prometheus.Counter
	cleared      prometheus.Counter
	queueDepth   prometheus.Gauge
	visibleTime  prometheus.Histogram
	feedbackSent *prometheus.CounterVec
}

// NewMetrics registers the coordinator metrics with cfg.Registry.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if cfg.Namespace == "" {
		cfg.Namespace = config.MetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.MetricsSubsystem
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		enqueued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "messages_enqueued_total",
			Help:        "Subtitle messages accepted by SetSubtitle",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind"}),

		displayed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "messages_displayed_total",
			Help:        "Subtitle messages that started a display cycle",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind"}),

		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "messages_dropped_total",
			Help:        "Pending messages discarded by a clear-queue request",
			ConstLabels: cfg.ConstLabels,
		}),

		cleared: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "clears_total",
			Help:        "Explicit subtitle clears",
			ConstLabels: cfg.ConstLabels,
		}),

		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "queue_depth",
			Help:        "Messages waiting behind the one on screen",
			ConstLabels: cfg.ConstLabels,
		}),

		visibleTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "display_cycle_seconds",
			Help:        "Wall time from appear start to fully hidden",
			ConstLabels: cfg.ConstLabels,
			Buckets:     []float64{0.25, 0.5, 1, 2, 3, 5, 8, 13},
		}),

		feedbackSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "feedback_emitted_total",
			Help:        "Feedback signals emitted on display",
			ConstLabels: cfg.ConstLabels,
		}, []string{"category"}),
	}
}

func (m *Metrics) recordEnqueue(kind models.Kind, depth int) {
	if m == nil {
		return
	}
	m.enqueued.WithLabelValues(string(kind)).Inc()
	m.queueDepth.Set(float64(depth))
}

func (m *Metrics) recordDisplay(kind models.Kind, depth int) {
	if m == nil {
		return
	}
	m.displayed.WithLabelValues(string(kind)).Inc()
	m.queueDepth.Set(float64(depth))
}

func (m *Metrics) recordDropped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.dropped.Add(float64(n))
}

func (m *Metrics) recordClear() {
	if m == nil {
		return
	}
	m.cleared.Inc()
}

func (m *Metrics) recordCycle(seconds float64) {
	if m == nil {
		return
	}
	m.visibleTime.Observe(seconds)
}

func (m *Metrics) recordFeedback(category models.FeedbackCategory) {
	if m == nil {
		return
	}
	m.feedbackSent.WithLabelValues(string(category)).Inc()
}
