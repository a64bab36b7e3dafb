package element

// Cloner is implemented by types that own resources which must be duplicated on copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// CloningTraits copies elements with their Clone method and moves them as plain values.
//
// Since moves can't fail, buffers never call Clone while relocating elements.
type CloningTraits[T Cloner[T]] struct {
	ValueTraits[T]
}

// Cloning returns the [Traits] of elements implementing [Cloner].
func Cloning[T Cloner[T]]() CloningTraits[T] {
	return CloningTraits[T]{}
}

func (CloningTraits[T]) Copy(dst, src *T) error {
	clone, err := (*src).Clone()
	if err != nil {
		return err
	}
	*dst = clone
	return nil
}

func (CloningTraits[T]) CopyAssign(dst, src *T) error {
	clone, err := (*src).Clone()
	if err != nil {
		return err
	}
	*dst = clone
	return nil
}
