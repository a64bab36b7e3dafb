package seqbuf_test

import (
	"slices"
	"testing"

	"github.com/teenjuna/seqbuf"
	"github.com/teenjuna/seqbuf/element"
	"github.com/teenjuna/seqbuf/internal/testing/require"
)

func TestConfig(t *testing.T) {
	c := &seqbuf.Config[any]{}

	require.PanicWithError(t, "traits can't be nil", func() {
		c.Traits(nil)
	})

	require.PanicWithError(t, "max capacity can't be < 1", func() {
		c.MaxCapacity(0)
	})

	require.PanicWithError(t, "prometheus config can't be nil", func() {
		c.Prometheus(nil)
	})

	require.NotPanics(t, func() {
		c.Traits(element.Values[any]())
		c.MaxCapacity(1)
		c.Prometheus(seqbuf.Prometheus(nil))
	})
}

func TestConfigTraits(t *testing.T) {
	var destroyed []string

	traits := element.Custom[string]().WithDestroy(func(v *string) {
		destroyed = append(destroyed, *v)
	})
	b := seqbuf.New(func(c *seqbuf.Config[string]) {
		c.Traits(traits)
	})
	for _, s := range []string{"a", "b", "c"} {
		require.Nil(t, b.PushBack(s))
	}

	destroyed = nil
	b.PopBack()
	require.Equal(t, destroyed, []string{"c"})

	// Moved-from elements are destroyed too once they are migrated.
	destroyed = nil
	require.Nil(t, b.Reserve(10))
	require.Equal(t, destroyed, []string{"", ""})

	destroyed = nil
	b.Release()
	require.Equal(t, destroyed, []string{"a", "b"})
}

func TestConfigMaxCapacity(t *testing.T) {
	b := seqbuf.New(func(c *seqbuf.Config[int]) {
		c.MaxCapacity(3)
	})

	require.Nil(t, b.PushBack(1))
	require.Nil(t, b.PushBack(2))
	require.ErrorIs(t, b.PushBack(3), seqbuf.ErrAllocation)
	require.Equal(t, b.Capacity(), 2)

	// The ceiling applies to requests, not to what the growth policy would like.
	require.Nil(t, b.Reserve(3))
	require.Nil(t, b.PushBack(3))
	require.Equal(t, contents(b), []int{1, 2, 3})
}

type document struct {
	Lines []string
}

func (d document) Clone() (document, error) {
	return document{Lines: slices.Clone(d.Lines)}, nil
}

func TestConfigCloning(t *testing.T) {
	b := seqbuf.New(func(c *seqbuf.Config[document]) {
		c.Traits(element.Cloning[document]())
	})
	require.Nil(t, b.PushBack(document{Lines: []string{"a"}}))

	c, err := b.Clone()
	require.Nil(t, err)
	c.At(0).Lines[0] = "b"
	require.Equal(t, b.At(0).Lines, []string{"a"})
	require.Equal(t, c.At(0).Lines, []string{"b"})
}
