package seqbuf

import (
	"math"

	"github.com/teenjuna/seqbuf/element"
)

// Config is a config of the buffer.
//
// The zero value is invalid. Instances are created by [New], [NewSized] and passed to the
// provided configuration functions.
type Config[T any] struct {
	traits      element.Traits[T]
	maxCapacity int
	prometheus  *PrometheusConfig
}

type ConfigFunc[T any] = func(c *Config[T])

// Traits sets the element lifetime policy. Default is [element.Values].
func (c *Config[T]) Traits(traits element.Traits[T]) {
	if traits == nil {
		panic("traits can't be nil")
	}
	c.traits = traits
}

// MaxCapacity limits the number of slots a single allocation can request. Allocations above
// the limit fail with [ErrAllocation]. Default is unlimited.
func (c *Config[T]) MaxCapacity(n int) {
	if n < 1 {
		panic("max capacity can't be < 1")
	}
	c.maxCapacity = n
}

// Prometheus sets the metrics config. Default is unregistered metrics.
func (c *Config[T]) Prometheus(config *PrometheusConfig) {
	if config == nil {
		panic("prometheus config can't be nil")
	}
	c.prometheus = config
}

func newConfig[T any](configFuncs ...ConfigFunc[T]) *Config[T] {
	cfg := Config[T]{}
	cfg.Traits(element.Values[T]())
	cfg.MaxCapacity(math.MaxInt)
	for _, cf := range configFuncs {
		if cf != nil {
			cf(&cfg)
		}
	}
	if cfg.prometheus == nil {
		cfg.Prometheus(Prometheus(nil))
	}

	return &cfg
}
