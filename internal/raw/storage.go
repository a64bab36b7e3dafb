// Package raw contains [Storage], the owner of the untyped slot block behind a buffer.
package raw

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

var (
	// ErrAllocation is returned when a block of the requested size can't be allocated.
	ErrAllocation = errors.New("allocation failed")
)

// Storage owns a block of slots sized for exactly Capacity elements of T.
//
// Storage knows nothing about which slots hold live elements: it never constructs or
// destroys T values, and the zero value found in a fresh slot is not an element. Keeping
// track of element lifetimes is the job of the owner.
//
// Storage must not be copied. Ownership of a block changes hands only through [Storage.Swap].
type Storage[T any] struct {
	_   noCopy
	buf []T
}

// SlotSize returns the size of a single slot in bytes.
func SlotSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Allocate acquires a block of n slots.
//
// Allocating zero slots is a no-op. The storage must not own a block already. Either the
// whole block is allocated or nothing is: on failure the storage stays empty and an error
// wrapping [ErrAllocation] is returned.
func (s *Storage[T]) Allocate(n int) (err error) {
	if n < 0 {
		panic("capacity can't be < 0")
	}
	if s.buf != nil {
		panic("storage is already allocated")
	}
	if n == 0 {
		return nil
	}

	if size := SlotSize[T](); size != 0 && uintptr(n) > uintptr(math.MaxInt)/size {
		return fmt.Errorf("%w: %d slots of %d bytes overflow", ErrAllocation, n, size)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		// makeslice reports unsatisfiable lengths with a runtime error.
		if rerr, ok := r.(runtime.Error); ok {
			s.buf = nil
			err = fmt.Errorf("%w: %w", ErrAllocation, rerr)
			return
		}
		panic(r)
	}()

	s.buf = make([]T, n)
	return nil
}

// Release drops the block. It doesn't destroy anything stored in it.
func (s *Storage[T]) Release() {
	s.buf = nil
}

// Capacity returns the number of slots in the block.
func (s *Storage[T]) Capacity() int {
	return len(s.buf)
}

// At returns a pointer to the slot at index i.
//
// The index is checked against the capacity only. Whether the slot holds a live element is
// up to the caller.
func (s *Storage[T]) At(i int) *T {
	if i < 0 || i >= len(s.buf) {
		panic("slot index out of range")
	}
	return &s.buf[i]
}

// Swap exchanges the blocks owned by s and other.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// noCopy makes go vet report copies of a Storage.
//
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
