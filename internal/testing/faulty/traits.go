// Package faulty contains element traits that fail on demand and keep count of live elements.
package faulty

import (
	"errors"
	"fmt"

	"github.com/teenjuna/seqbuf/element"
)

var (
	ErrInjected = errors.New("injected failure")
)

type Op int

const (
	Construct Op = iota
	Copy
	Move
	CopyAssign
	MoveAssign
	Destroy
)

func (op Op) String() string {
	switch op {
	case Construct:
		return "construct"
	case Copy:
		return "copy"
	case Move:
		return "move"
	case CopyAssign:
		return "copy assign"
	case MoveAssign:
		return "move assign"
	case Destroy:
		return "destroy"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Traits behaves like [element.ValueTraits], except that it can fail a chosen call of an
// operation once, and it counts live elements.
type Traits[T any] struct {
	values      element.ValueTraits[T]
	calls       map[Op]int
	failOp      Op
	failAt      int
	live        int
	nothrowMove bool
	copyable    bool
}

var _ element.Traits[any] = (*Traits[any])(nil)

func New[T any]() *Traits[T] {
	return &Traits[T]{
		calls:       make(map[Op]int),
		nothrowMove: true,
		copyable:    true,
	}
}

// FailAt makes the n-th call of op from now on fail with [ErrInjected]. Only that call fails.
func (t *Traits[T]) FailAt(op Op, n int) *Traits[T] {
	if n < 1 {
		panic("n can't be < 1")
	}
	if op == Destroy {
		panic("destroy can't fail")
	}
	t.calls[op] = 0
	t.failOp = op
	t.failAt = n
	return t
}

// FallibleMove makes the traits report moves as fallible.
func (t *Traits[T]) FallibleMove() *Traits[T] {
	t.nothrowMove = false
	return t
}

// NonCopyable makes the traits report elements as non-copyable.
func (t *Traits[T]) NonCopyable() *Traits[T] {
	t.copyable = false
	return t
}

// Live returns the number of constructed and not yet destroyed elements.
func (t *Traits[T]) Live() int {
	return t.live
}

// Calls returns the number of calls of op since the traits were created or reset.
func (t *Traits[T]) Calls(op Op) int {
	return t.calls[op]
}

// Reset zeroes the call counters.
func (t *Traits[T]) Reset() {
	clear(t.calls)
}

func (t *Traits[T]) call(op Op) error {
	t.calls[op]++
	if t.failAt > 0 && t.failOp == op && t.calls[op] == t.failAt {
		t.failAt = 0
		return fmt.Errorf("%s: %w", op, ErrInjected)
	}
	return nil
}

func (t *Traits[T]) Construct(dst *T) error {
	if err := t.call(Construct); err != nil {
		return err
	}
	t.live++
	return t.values.Construct(dst)
}

func (t *Traits[T]) Copy(dst, src *T) error {
	if !t.copyable {
		panic("elements are not copyable")
	}
	if err := t.call(Copy); err != nil {
		return err
	}
	t.live++
	return t.values.Copy(dst, src)
}

func (t *Traits[T]) Move(dst, src *T) error {
	if err := t.call(Move); err != nil {
		return err
	}
	t.live++
	return t.values.Move(dst, src)
}

func (t *Traits[T]) CopyAssign(dst, src *T) error {
	if !t.copyable {
		panic("elements are not copyable")
	}
	if err := t.call(CopyAssign); err != nil {
		return err
	}
	return t.values.CopyAssign(dst, src)
}

func (t *Traits[T]) MoveAssign(dst, src *T) error {
	if err := t.call(MoveAssign); err != nil {
		return err
	}
	return t.values.MoveAssign(dst, src)
}

func (t *Traits[T]) Destroy(v *T) {
	t.calls[Destroy]++
	t.live--
	t.values.Destroy(v)
}

func (t *Traits[T]) NothrowMove() bool {
	return t.nothrowMove
}

func (t *Traits[T]) Copyable() bool {
	return t.copyable
}
