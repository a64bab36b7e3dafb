package seqbuf

import (
	"fmt"
	"math"

	"github.com/teenjuna/seqbuf/internal/raw"
)

// Reserve makes sure the buffer can hold n elements without reallocating. If n exceeds the
// capacity, storage of exactly n slots is allocated and the elements are migrated into it.
//
// On failure the buffer is left as it was before the call.
func (b *Buffer[T]) Reserve(n int) error {
	if n < 0 {
		panic("capacity can't be < 0")
	}
	if n <= b.data.Capacity() {
		return nil
	}

	if err := b.reallocate(n, b.size, 0, nil); err != nil {
		return fmt.Errorf("reserve %d slots: %w", n, err)
	}

	return nil
}

// Resize changes the number of elements to n, destroying elements from the end or appending
// value-initialized ones. Growing past the capacity reallocates to exactly n slots.
//
// On failure the buffer is left as it was before the call.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		panic("size can't be < 0")
	}

	switch {
	case n < b.size:
		b.destroyRange(&b.data, n, b.size)
		b.size = n

	case n > b.data.Capacity():
		size := b.size
		err := b.reallocate(n, size, n-size, func(s *raw.Storage[T]) error {
			return b.constructRange(s, size, n)
		})
		if err != nil {
			return fmt.Errorf("resize to %d: %w", n, err)
		}

	case n > b.size:
		if err := b.constructRange(&b.data, b.size, n); err != nil {
			return b.rollback(fmt.Errorf("resize to %d: %w", n, err))
		}
		b.size = n
	}

	return nil
}

// grown returns the capacity to grow a full buffer to.
func (b *Buffer[T]) grown() (int, error) {
	capacity := b.data.Capacity()
	if capacity == 0 {
		return 1, nil
	}
	if capacity > math.MaxInt/2 {
		b.metrics.allocationFailures.Inc()
		return 0, fmt.Errorf("%w: capacity %d can't be doubled", ErrAllocation, capacity)
	}
	return capacity * 2, nil
}

// reallocate moves the buffer into new storage of n slots, leaving a gap of k slots at pos.
//
// The gap is populated by fill, which must construct the k elements in the slots
// [pos, pos+k) of the new storage or leave them uninitialized on failure. Fill runs before
// any live element is touched, and the old storage is only destroyed once every element has
// been migrated. Any failure leaves the buffer as it was.
func (b *Buffer[T]) reallocate(n, pos, k int, fill func(s *raw.Storage[T]) error) error {
	var fresh raw.Storage[T]
	if err := b.allocate(&fresh, n); err != nil {
		return err
	}
	defer b.free(&fresh)

	if fill != nil {
		if err := fill(&fresh); err != nil {
			return b.rollback(err)
		}
	}

	if err := b.relocate(&fresh, 0, &b.data, 0, pos); err != nil {
		b.destroyRange(&fresh, pos, pos+k)
		return b.rollback(err)
	}

	if err := b.relocate(&fresh, pos+k, &b.data, pos, b.size-pos); err != nil {
		b.unrelocate(&fresh, 0, &b.data, 0, pos)
		b.destroyRange(&fresh, pos, pos+k)
		return b.rollback(err)
	}

	b.destroyRange(&b.data, 0, b.size)
	b.data.Swap(&fresh)
	b.size += k
	b.metrics.reallocations.Inc()

	return nil
}
