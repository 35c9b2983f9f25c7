package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/filterkit/pkg/rangeslider"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "filterkit").
	Namespace string
	// Subsystem is the metrics subsystem (default: "rangeslider").
	Subsystem string
	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels
	// Registry defaults to prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) { c.Subsystem = subsystem }
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

func defaultConfig() Config {
	return Config{
		Namespace: "filterkit",
		Subsystem: "rangeslider",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector counts range validation failures.
type Collector struct {
	errors *prometheus.CounterVec
}

// New registers the collector's metrics. It panics if they are already
// registered in the target registry, like promauto does.
//
// Metrics:
//   - filterkit_rangeslider_errors_total{kind, field, level}
func New(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(cfg.Registry)
	return &Collector{
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of rejected range mutations by kind",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind", "field", "level"}),
	}
}

// Observe records e.
func (c *Collector) Observe(e *rangeslider.Error) {
	c.errors.WithLabelValues(string(e.Kind), e.Field, strconv.Itoa(e.HierarchyLevel)).Inc()
}

// ErrorHandler counts every error and forwards it to next when next is
// non-nil. Install it on a root state to count errors from the whole tree.
func (c *Collector) ErrorHandler(next rangeslider.ErrorHandler) rangeslider.ErrorHandler {
	return func(e *rangeslider.Error) {
		c.Observe(e)
		if next != nil {
			next(e)
		}
	}
}

// Errors returns the counter for one label set.
func (c *Collector) Errors(kind rangeslider.Kind, field string, level int) prometheus.Counter {
	return c.errors.WithLabelValues(string(kind), field, strconv.Itoa(level))
}
