package seqbuf

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by buffers.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
// Metrics are created once per config, so a single config can be shared by any number of
// buffers, which then report into the same series.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the allocations counter.
	Allocations prometheus.CounterOpts
	// Options for the allocation failures counter.
	AllocationFailures prometheus.CounterOpts
	// Options for the reallocations counter.
	Reallocations prometheus.CounterOpts
	// Options for the rollbacks counter.
	Rollbacks prometheus.CounterOpts
	// Options for the allocated slots gauge.
	Slots prometheus.GaugeOpts

	registerer prometheus.Registerer
	once       sync.Once
	m          *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "seqbuf"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Allocations: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations",
			Help:      "Number of storage allocations",
		},
		AllocationFailures: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures",
			Help:      "Number of storage allocations that failed",
		},
		Reallocations: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reallocations",
			Help:      "Number of times live elements were migrated to new storage",
		},
		Rollbacks: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rollbacks",
			Help:      "Number of operations rolled back after an element failure",
		},
		Slots: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "slots",
			Help:      "Number of allocated element slots",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	c.once.Do(func() {
		m := metrics{
			allocations:        prometheus.NewCounter(c.Allocations),
			allocationFailures: prometheus.NewCounter(c.AllocationFailures),
			reallocations:      prometheus.NewCounter(c.Reallocations),
			rollbacks:          prometheus.NewCounter(c.Rollbacks),
			slots:              prometheus.NewGauge(c.Slots),
		}

		if c.registerer != nil {
			registerer := prometheus.WrapRegistererWith(
				prometheus.Labels{"component": "seqbuf"},
				c.registerer,
			)
			registerer.MustRegister(
				m.allocations,
				m.allocationFailures,
				m.reallocations,
				m.rollbacks,
				m.slots,
			)
		}

		c.m = &m
	})

	return c.m
}

type metrics struct {
	allocations        prometheus.Counter
	allocationFailures prometheus.Counter
	reallocations      prometheus.Counter
	rollbacks          prometheus.Counter
	slots              prometheus.Gauge
}
