package element

// ValueTraits manages elements as plain Go values.
//
// Construction yields the zero value, copies are assignments and moves are assignments
// that reset the source to its zero value. Nothing can fail.
type ValueTraits[T any] struct{}

var _ Traits[any] = ValueTraits[any]{}

// Values returns the [Traits] of plain Go values. It's the default of every buffer.
func Values[T any]() ValueTraits[T] {
	return ValueTraits[T]{}
}

func (ValueTraits[T]) Construct(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

func (ValueTraits[T]) Copy(dst, src *T) error {
	*dst = *src
	return nil
}

func (ValueTraits[T]) Move(dst, src *T) error {
	var zero T
	*dst, *src = *src, zero
	return nil
}

func (ValueTraits[T]) CopyAssign(dst, src *T) error {
	*dst = *src
	return nil
}

func (ValueTraits[T]) MoveAssign(dst, src *T) error {
	if dst == src {
		return nil
	}
	var zero T
	*dst, *src = *src, zero
	return nil
}

func (ValueTraits[T]) Destroy(*T) {}

func (ValueTraits[T]) NothrowMove() bool {
	return true
}

func (ValueTraits[T]) Copyable() bool {
	return true
}
