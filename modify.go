package seqbuf

import (
	"fmt"

	"github.com/teenjuna/seqbuf/internal/raw"
)

// PushBack appends a copy of v.
//
// If the buffer is full, its capacity is doubled (or set to 1 if it's zero). On failure the
// buffer is left as it was before the call.
func (b *Buffer[T]) PushBack(v T) error {
	_, err := b.EmplaceBack(func(dst *T) error {
		return b.traits.Copy(dst, &v)
	})
	return err
}

// PushBackMove appends v by moving it, leaving v moved-from. See [Buffer.PushBack].
func (b *Buffer[T]) PushBackMove(v *T) error {
	_, err := b.EmplaceBack(func(dst *T) error {
		return b.traits.Move(dst, v)
	})
	return err
}

// EmplaceBack appends an element built by construct and returns a pointer to it.
//
// Construct receives the uninitialized slot the element will live in. When the buffer is
// full, that slot is in the new storage and construct runs before any existing element is
// migrated, so its failure never disturbs them. See [Buffer.PushBack].
func (b *Buffer[T]) EmplaceBack(construct func(*T) error) (*T, error) {
	if construct == nil {
		panic("construct func can't be nil")
	}

	pos := b.size
	if b.size < b.data.Capacity() {
		if err := b.construct(b.data.At(pos), construct); err != nil {
			return nil, b.rollback(fmt.Errorf("construct element: %w", err))
		}
		b.size++
		return b.data.At(pos), nil
	}

	if err := b.growAround(pos, construct); err != nil {
		return nil, err
	}

	return b.data.At(pos), nil
}

// Insert inserts a copy of v before the element at pos and returns the index of the new
// element. Pos must be within [0, Size].
//
// On failure the buffer is left as it was before the call.
func (b *Buffer[T]) Insert(pos int, v T) (int, error) {
	return b.Emplace(pos, func(dst *T) error {
		return b.traits.Copy(dst, &v)
	})
}

// InsertMove inserts v by moving it, leaving v moved-from. V must not point into the buffer.
// See [Buffer.Insert].
func (b *Buffer[T]) InsertMove(pos int, v *T) (int, error) {
	return b.Emplace(pos, func(dst *T) error {
		return b.traits.Move(dst, v)
	})
}

// Emplace inserts an element built by construct before the element at pos and returns the
// index of the new element. Pos must be within [0, Size].
//
// With spare capacity the last element is moved into the first free slot, the elements in
// [pos, Size-1) are shifted one slot toward the end and the new element is constructed in
// the slot at pos. Otherwise the new element is constructed at its final index in new
// storage, and the existing elements are migrated around it.
//
// On failure the buffer is left as it was before the call.
func (b *Buffer[T]) Emplace(pos int, construct func(*T) error) (int, error) {
	if pos < 0 || pos > b.size {
		panic("position out of range")
	}
	if construct == nil {
		panic("construct func can't be nil")
	}

	if b.size < b.data.Capacity() {
		if err := b.shiftInsert(pos, construct); err != nil {
			return 0, b.rollback(err)
		}
		b.size++
		return pos, nil
	}

	if err := b.growAround(pos, construct); err != nil {
		return 0, err
	}

	return pos, nil
}

func (b *Buffer[T]) growAround(pos int, construct func(*T) error) error {
	n, err := b.grown()
	if err != nil {
		return err
	}

	return b.reallocate(n, pos, 1, func(s *raw.Storage[T]) error {
		if err := b.construct(s.At(pos), construct); err != nil {
			return fmt.Errorf("construct element: %w", err)
		}
		return nil
	})
}

// shiftInsert opens a gap at pos inside the current storage and constructs the new element
// there. It doesn't change the size. On failure the shift is undone.
func (b *Buffer[T]) shiftInsert(pos int, construct func(*T) error) error {
	if pos == b.size {
		if err := b.construct(b.data.At(pos), construct); err != nil {
			return fmt.Errorf("construct element: %w", err)
		}
		return nil
	}

	tail := b.data.At(b.size)
	if err := b.traits.Move(tail, b.data.At(b.size-1)); err != nil {
		var zero T
		*tail = zero
		return fmt.Errorf("move element %d: %w", b.size-1, err)
	}

	for i := b.size - 1; i > pos; i-- {
		if err := b.traits.MoveAssign(b.data.At(i), b.data.At(i-1)); err != nil {
			b.unshift(i)
			return fmt.Errorf("move element %d: %w", i-1, err)
		}
	}

	slot := b.data.At(pos)
	b.destroy(slot)
	if err := b.construct(slot, construct); err != nil {
		b.mustMove(slot, b.data.At(pos+1))
		b.unshift(pos + 1)
		return fmt.Errorf("construct element: %w", err)
	}

	return nil
}

// unshift moves the elements in [from+1, Size] one slot toward the front and destroys the
// slot at Size, undoing a partial shift started by shiftInsert.
func (b *Buffer[T]) unshift(from int) {
	for i := from; i < b.size; i++ {
		b.mustMoveAssign(b.data.At(i), b.data.At(i+1))
	}
	b.destroy(b.data.At(b.size))
}

// Erase removes the element at pos, shifting the following elements one slot toward the
// front, and returns pos, which now refers to the element that followed the removed one.
// Pos must be within [0, Size). The capacity doesn't change.
//
// Shifting can only fail if the element traits don't guarantee nothrow moves. In that case
// all elements stay live and the size doesn't change, but the elements after pos may
// already have been shifted.
func (b *Buffer[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= b.size {
		panic("position out of range")
	}

	for i := pos; i < b.size-1; i++ {
		if err := b.traits.MoveAssign(b.data.At(i), b.data.At(i+1)); err != nil {
			return 0, fmt.Errorf("move element %d: %w", i+1, err)
		}
	}
	b.PopBack()

	return pos, nil
}

// PopBack destroys the last element. It does nothing if the buffer is empty.
func (b *Buffer[T]) PopBack() {
	if b.size == 0 {
		return
	}
	b.size--
	b.destroy(b.data.At(b.size))
}
