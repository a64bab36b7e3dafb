// Package seqbuf provides [Buffer], a growable contiguous sequence container.
//
// A buffer owns a block of storage and tracks how many of its slots hold live elements.
// How elements are constructed, copied, moved and destroyed is decided by the
// [element.Traits] the buffer is configured with, which defaults to treating elements as
// plain Go values. Operations that grow the buffer or insert into it either succeed or
// leave it exactly as it was:
//
//	b := seqbuf.New[string]()
//	defer b.Release()
//
//	if err := b.PushBack("a"); err != nil {
//		return err
//	}
//
// Buffers are not thread-safe.
package seqbuf
