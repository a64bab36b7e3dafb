package seqbuf_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/internal/testing/faulty"
	"github.com/teenjuna/seqbuf/internal/testing/require"
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		fn(t)
	})
}

func withTraits[T any](traits *faulty.Traits[T]) seqbuf.ConfigFunc[T] {
	return func(c *seqbuf.Config[T]) {
		c.Traits(traits)
	}
}

func withMaxCapacity[T any](n int) seqbuf.ConfigFunc[T] {
	return func(c *seqbuf.Config[T]) {
		c.MaxCapacity(n)
	}
}

func withPrometheus[T any](config *seqbuf.PrometheusConfig) seqbuf.ConfigFunc[T] {
	return func(c *seqbuf.Config[T]) {
		c.Prometheus(config)
	}
}

// contents returns the live elements of b. It never returns nil.
func contents[T any](b *seqbuf.Buffer[T]) []T {
	items := make([]T, 0, b.Size())
	for item := range b.Iter() {
		items = append(items, item)
	}
	return items
}

// filled returns a buffer holding the provided items, pushed one by one.
func filled[T any](t *testing.T, items []T, configFuncs ...seqbuf.ConfigFunc[T]) *seqbuf.Buffer[T] {
	t.Helper()
	b := seqbuf.New(configFuncs...)
	for _, item := range items {
		require.Nil(t, b.PushBack(item))
	}
	return b
}

type state[T any] struct {
	Size     int
	Capacity int
	Items    []T
}

func snapshot[T any](b *seqbuf.Buffer[T]) state[T] {
	return state[T]{
		Size:     b.Size(),
		Capacity: b.Capacity(),
		Items:    contents(b),
	}
}

func gather(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.Nil(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		metric := family.GetMetric()[0]
		if counter := metric.GetCounter(); counter != nil {
			return counter.GetValue()
		}
		return metric.GetGauge().GetValue()
	}

	t.Fatalf("metric %s not found", name)
	return 0
}
