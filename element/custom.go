package element

// CustomTraits is a [Traits] assembled from functions. Operations without a function
// behave like [ValueTraits].
type CustomTraits[T any] struct {
	construct   func(dst *T) error
	copy        func(dst, src *T) error
	copyAssign  func(dst, src *T) error
	move        func(dst, src *T) error
	moveAssign  func(dst, src *T) error
	destroy     func(v *T)
	nothrowMove bool
	copyable    bool
}

var _ Traits[any] = (*CustomTraits[any])(nil)

// Custom returns a [CustomTraits] that behaves like [Values] until functions are installed.
func Custom[T any]() *CustomTraits[T] {
	return &CustomTraits[T]{
		nothrowMove: true,
		copyable:    true,
	}
}

func (c *CustomTraits[T]) WithConstruct(fn func(dst *T) error) *CustomTraits[T] {
	if fn == nil {
		panic("construct func can't be nil")
	}
	c.construct = fn
	return c
}

func (c *CustomTraits[T]) WithCopy(fn func(dst, src *T) error) *CustomTraits[T] {
	if fn == nil {
		panic("copy func can't be nil")
	}
	if !c.copyable {
		panic("can't set copy func on non-copyable traits")
	}
	c.copy = fn
	return c
}

func (c *CustomTraits[T]) WithCopyAssign(fn func(dst, src *T) error) *CustomTraits[T] {
	if fn == nil {
		panic("copy assign func can't be nil")
	}
	if !c.copyable {
		panic("can't set copy assign func on non-copyable traits")
	}
	c.copyAssign = fn
	return c
}

// WithMove installs the move constructor. If nothrow is false, the traits no longer report
// [Traits.NothrowMove] and copyable elements get relocated by copying.
func (c *CustomTraits[T]) WithMove(fn func(dst, src *T) error, nothrow bool) *CustomTraits[T] {
	if fn == nil {
		panic("move func can't be nil")
	}
	c.move = fn
	c.nothrowMove = c.nothrowMove && nothrow
	return c
}

// WithMoveAssign installs the move assignment. Like [CustomTraits.WithMove], a fallible
// function clears [Traits.NothrowMove].
func (c *CustomTraits[T]) WithMoveAssign(fn func(dst, src *T) error, nothrow bool) *CustomTraits[T] {
	if fn == nil {
		panic("move assign func can't be nil")
	}
	c.moveAssign = fn
	c.nothrowMove = c.nothrowMove && nothrow
	return c
}

func (c *CustomTraits[T]) WithDestroy(fn func(v *T)) *CustomTraits[T] {
	if fn == nil {
		panic("destroy func can't be nil")
	}
	c.destroy = fn
	return c
}

// WithoutCopy marks the elements as non-copyable. Copy and CopyAssign will panic.
func (c *CustomTraits[T]) WithoutCopy() *CustomTraits[T] {
	if c.copy != nil || c.copyAssign != nil {
		panic("can't disable copy after setting copy funcs")
	}
	c.copyable = false
	return c
}

func (c *CustomTraits[T]) Construct(dst *T) error {
	if c.construct != nil {
		return c.construct(dst)
	}
	return ValueTraits[T]{}.Construct(dst)
}

func (c *CustomTraits[T]) Copy(dst, src *T) error {
	if !c.copyable {
		panic("elements are not copyable")
	}
	if c.copy != nil {
		return c.copy(dst, src)
	}
	return ValueTraits[T]{}.Copy(dst, src)
}

func (c *CustomTraits[T]) CopyAssign(dst, src *T) error {
	if !c.copyable {
		panic("elements are not copyable")
	}
	if c.copyAssign != nil {
		return c.copyAssign(dst, src)
	}
	return ValueTraits[T]{}.CopyAssign(dst, src)
}

func (c *CustomTraits[T]) Move(dst, src *T) error {
	if c.move != nil {
		return c.move(dst, src)
	}
	return ValueTraits[T]{}.Move(dst, src)
}

func (c *CustomTraits[T]) MoveAssign(dst, src *T) error {
	if c.moveAssign != nil {
		return c.moveAssign(dst, src)
	}
	return ValueTraits[T]{}.MoveAssign(dst, src)
}

func (c *CustomTraits[T]) Destroy(v *T) {
	if c.destroy != nil {
		c.destroy(v)
	}
}

func (c *CustomTraits[T]) NothrowMove() bool {
	return c.nothrowMove
}

func (c *CustomTraits[T]) Copyable() bool {
	return c.copyable
}
