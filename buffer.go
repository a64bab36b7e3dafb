package seqbuf

import (
	"fmt"
	"iter"

	"github.com/teenjuna/seqbuf/element"
	"github.com/teenjuna/seqbuf/internal/raw"
)

// Buffer is a growable contiguous sequence of elements of type T.
//
// The first Size slots of the storage always hold live elements and the remaining slots up
// to Capacity are uninitialized. Every operation either keeps that true on success or
// restores it before returning an error.
//
// Pointers and positions returned by a buffer are invalidated by any operation that
// reallocates or shifts elements. Buffers must not be copied and are not thread-safe.
type Buffer[T any] struct {
	cfg     *Config[T]
	traits  element.Traits[T]
	metrics *metrics
	size    int
	data    raw.Storage[T]
}

// New creates an empty buffer with zero capacity.
func New[T any](configFuncs ...ConfigFunc[T]) *Buffer[T] {
	return newBuffer(newConfig(configFuncs...))
}

// NewSized creates a buffer holding n value-initialized elements and exactly n slots.
func NewSized[T any](n int, configFuncs ...ConfigFunc[T]) (*Buffer[T], error) {
	if n < 0 {
		panic("size can't be < 0")
	}

	b := New(configFuncs...)
	if err := b.Resize(n); err != nil {
		return nil, err
	}

	return b, nil
}

func newBuffer[T any](cfg *Config[T]) *Buffer[T] {
	return &Buffer[T]{
		cfg:     cfg,
		traits:  cfg.traits,
		metrics: cfg.prometheus.metrics(),
	}
}

// Size returns the number of live elements.
func (b *Buffer[T]) Size() int {
	return b.size
}

// Capacity returns the number of elements the buffer can hold without reallocating.
func (b *Buffer[T]) Capacity() int {
	return b.data.Capacity()
}

// At returns a pointer to the element at index i. It panics unless 0 <= i < Size.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= b.size {
		panic("index out of range")
	}
	return b.data.At(i)
}

// Iter returns a sequence of copies of the live elements in storage order.
func (b *Buffer[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(*b.data.At(i)) {
				return
			}
		}
	}
}

// All returns a sequence of indexes and pointers to the live elements in storage order.
//
// The buffer must not be modified during iteration, except through the yielded pointers.
func (b *Buffer[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.data.At(i)) {
				return
			}
		}
	}
}

// Clear destroys all elements. The capacity is kept.
func (b *Buffer[T]) Clear() {
	b.destroyRange(&b.data, 0, b.size)
	b.size = 0
}

// Release destroys all elements and frees the storage. The buffer stays usable and empty.
//
// Buffers of elements whose traits have a Destroy function must be released for it to run.
func (b *Buffer[T]) Release() {
	b.Clear()
	b.free(&b.data)
}

// Swap exchanges the contents of two buffers, along with their configs. It never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.cfg, other.cfg = other.cfg, b.cfg
	b.traits, other.traits = other.traits, b.traits
	b.metrics, other.metrics = other.metrics, b.metrics
	b.size, other.size = other.size, b.size
	b.data.Swap(&other.data)
}

// Move returns a new buffer that takes over the elements and storage of b, leaving b empty.
// No storage is allocated.
func (b *Buffer[T]) Move() *Buffer[T] {
	m := newBuffer(b.cfg)
	m.Swap(b)
	return m
}

// MoveFrom destroys the elements of b and takes over the elements and storage of other,
// leaving other empty. No storage is allocated.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	b.Release()
	b.Swap(other)
}

// Clone returns an independent copy of b with capacity equal to its size.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	c := newBuffer(b.cfg)
	if err := c.copyConstruct(b); err != nil {
		return nil, fmt.Errorf("clone: %w", err)
	}
	return c, nil
}

// CopyFrom replaces the elements of b with copies of the elements of other.
//
// If other doesn't fit into the capacity of b, the copy is built in new storage and b is
// untouched on failure. Otherwise the storage is reused: the common prefix is copy-assigned
// and the rest is either destroyed or copy-constructed. A failure on this path leaves every
// slot up to Size live but some of them may already hold the new values.
func (b *Buffer[T]) CopyFrom(other *Buffer[T]) error {
	if b == other {
		return nil
	}

	if other.size > b.data.Capacity() {
		c := newBuffer(b.cfg)
		if err := c.copyConstruct(other); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		b.Swap(c)
		c.Release()
		return nil
	}

	common := min(b.size, other.size)
	for i := range common {
		if err := b.traits.CopyAssign(b.data.At(i), other.data.At(i)); err != nil {
			return b.rollback(fmt.Errorf("copy: assign element %d: %w", i, err))
		}
	}

	if b.size > other.size {
		b.destroyRange(&b.data, other.size, b.size)
	} else {
		err := b.transfer(&b.data, b.size, &other.data, b.size, other.size-b.size, false)
		if err != nil {
			return b.rollback(fmt.Errorf("copy: %w", err))
		}
	}
	b.size = other.size

	return nil
}

// copyConstruct fills the empty buffer b with copies of the elements of other.
func (b *Buffer[T]) copyConstruct(other *Buffer[T]) error {
	if other.size == 0 {
		return nil
	}
	if err := b.allocate(&b.data, other.size); err != nil {
		return err
	}
	if err := b.transfer(&b.data, 0, &other.data, 0, other.size, false); err != nil {
		b.free(&b.data)
		return b.rollback(err)
	}
	b.size = other.size
	return nil
}
