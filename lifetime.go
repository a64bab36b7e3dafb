package seqbuf

import (
	"fmt"

	"github.com/teenjuna/seqbuf/internal/raw"
)

func (b *Buffer[T]) construct(dst *T, construct func(*T) error) error {
	if err := construct(dst); err != nil {
		var zero T
		*dst = zero
		return err
	}
	return nil
}

// constructRange value-initializes the slots [from, to) of s. On failure every slot it
// initialized is destroyed again.
func (b *Buffer[T]) constructRange(s *raw.Storage[T], from, to int) error {
	for i := from; i < to; i++ {
		if err := b.construct(s.At(i), b.traits.Construct); err != nil {
			b.destroyRange(s, from, i)
			return fmt.Errorf("construct element %d: %w", i, err)
		}
	}
	return nil
}

func (b *Buffer[T]) destroy(v *T) {
	b.traits.Destroy(v)
	var zero T
	*v = zero
}

func (b *Buffer[T]) destroyRange(s *raw.Storage[T], from, to int) {
	for i := from; i < to; i++ {
		b.destroy(s.At(i))
	}
}

// moves reports whether live elements are relocated by moving rather than copying.
func (b *Buffer[T]) moves() bool {
	return b.traits.NothrowMove() || !b.traits.Copyable()
}

// transfer constructs n elements in dst starting at slot to from the live elements of src
// starting at slot from, either moving or copying them.
//
// On failure the transfer is undone and src is left as it was before the call.
func (b *Buffer[T]) transfer(dst *raw.Storage[T], to int, src *raw.Storage[T], from, n int, move bool) error {
	for i := range n {
		d, s := dst.At(to+i), src.At(from+i)

		var err error
		if move {
			err = b.traits.Move(d, s)
		} else {
			err = b.traits.Copy(d, s)
		}
		if err != nil {
			var zero T
			*d = zero
			b.untransfer(dst, to, src, from, i, move)
			if move {
				return fmt.Errorf("move element %d: %w", from+i, err)
			}
			return fmt.Errorf("copy element %d: %w", from+i, err)
		}
	}
	return nil
}

// untransfer undoes a complete transfer of n elements. Moved elements are moved back.
func (b *Buffer[T]) untransfer(dst *raw.Storage[T], to int, src *raw.Storage[T], from, n int, move bool) {
	for i := n - 1; i >= 0; i-- {
		d := dst.At(to + i)
		if move {
			b.mustMoveAssign(src.At(from+i), d)
		}
		b.destroy(d)
	}
}

func (b *Buffer[T]) relocate(dst *raw.Storage[T], to int, src *raw.Storage[T], from, n int) error {
	return b.transfer(dst, to, src, from, n, b.moves())
}

func (b *Buffer[T]) unrelocate(dst *raw.Storage[T], to int, src *raw.Storage[T], from, n int) {
	b.untransfer(dst, to, src, from, n, b.moves())
}

// mustMoveAssign is used to undo moves. If that fails too, there is no consistent state left
// to return to.
func (b *Buffer[T]) mustMoveAssign(dst, src *T) {
	if err := b.traits.MoveAssign(dst, src); err != nil {
		panic(fmt.Sprintf("rollback failed: %v", err))
	}
}

func (b *Buffer[T]) mustMove(dst, src *T) {
	if err := b.traits.Move(dst, src); err != nil {
		panic(fmt.Sprintf("rollback failed: %v", err))
	}
}

func (b *Buffer[T]) allocate(s *raw.Storage[T], n int) error {
	if n > b.cfg.maxCapacity {
		b.metrics.allocationFailures.Inc()
		return fmt.Errorf("%w: %d slots exceed max capacity of %d", ErrAllocation, n, b.cfg.maxCapacity)
	}
	if err := s.Allocate(n); err != nil {
		b.metrics.allocationFailures.Inc()
		return err
	}
	b.metrics.allocations.Inc()
	b.metrics.slots.Add(float64(n))
	return nil
}

func (b *Buffer[T]) free(s *raw.Storage[T]) {
	if n := s.Capacity(); n > 0 {
		b.metrics.slots.Sub(float64(n))
	}
	s.Release()
}

func (b *Buffer[T]) rollback(err error) error {
	b.metrics.rollbacks.Inc()
	return err
}
