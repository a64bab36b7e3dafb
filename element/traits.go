// This package contains the main [Traits] interface and several implementations.
package element

// Traits defines how a buffer manages the lifetime of its elements.
//
// A slot is either uninitialized (it holds the zero value and is not an element) or live.
// Construct, Copy and Move turn an uninitialized slot into a live one. CopyAssign and
// MoveAssign overwrite a live slot. Destroy ends the life of a live slot.
//
// Failing operations must leave their operands as they were: a failed construction leaves
// dst uninitialized, a failed assignment leaves dst unchanged, and src is never changed by
// a failed operation.
type Traits[T any] interface {
	// Construct value-initializes the uninitialized slot dst.
	Construct(dst *T) error
	// Copy constructs a copy of src in the uninitialized slot dst.
	Copy(dst, src *T) error
	// Move constructs dst from src. The src element stays live in a moved-from state and
	// will be destroyed later.
	Move(dst, src *T) error
	// CopyAssign overwrites the live element dst with a copy of src.
	CopyAssign(dst, src *T) error
	// MoveAssign overwrites the live element dst with src, leaving src moved-from.
	MoveAssign(dst, src *T) error
	// Destroy ends the lifetime of the live element v. It must handle moved-from elements.
	Destroy(v *T)
	// NothrowMove reports whether Move and MoveAssign never fail.
	//
	// Buffers relocate elements with Move when this is true, and with Copy otherwise, so
	// a failure halfway through a relocation never damages the source elements.
	NothrowMove() bool
	// Copyable reports whether Copy and CopyAssign are supported.
	//
	// Elements that can't be copied are always relocated with Move.
	Copyable() bool
}
