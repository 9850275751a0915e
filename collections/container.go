package collections

// Cursor is the position contract shared by every iterator.
//
// A cursor is either positioned on an element or at the end sentinel.
type Cursor interface {
	// Reset positions the cursor on the first element, or at the end when
	// the collection is empty.
	Reset()

	// Advance moves to the next element. It returns false exactly when the
	// cursor ends up at the end sentinel; advancing at the end is a no-op.
	Advance() bool

	// IsEnd reports whether the cursor is at the end sentinel.
	IsEnd() bool
}

// ValueIterator is a [Cursor] that yields element values.
type ValueIterator[V any] interface {
	Cursor

	// Value returns the element under the cursor. It returns false at the
	// end sentinel.
	Value() (V, bool)
}

// KeyValueIterator is a [ValueIterator] over an associative container.
type KeyValueIterator[K, V any] interface {
	ValueIterator[V]

	// Key returns the key under the cursor. It returns false at the end
	// sentinel.
	Key() (K, bool)
}

// Cloner is implemented by iterators that can produce independent copies.
type Cloner[I any] interface {
	// Clone returns a new cursor at the same position over the same store.
	Clone() I

	// Cloned reports whether the cursor was produced by Clone and is
	// therefore owned by its receiver.
	Cloned() bool
}

// Container is the contract shared by the iterable collections.
//
// I is the concrete iterator type handed out by First.
type Container[I any] interface {
	// Count returns the number of elements.
	Count() int

	// IsEmpty reports whether Count() == 0.
	IsEmpty() bool

	// Clear removes every element.
	Clear()

	// First returns a cursor on the first element, or at the end when empty.
	First() I
}

// Finder is implemented by containers that can position a cursor on a key.
type Finder[K, I any] interface {
	// Find returns a cursor on the first element equal to key, or at the
	// end when there is none.
	Find(key K) I
}

var (
	_ Container[*ListIterator] = (*List)(nil)
	_ Container[*MapIterator]  = (*Map)(nil)
	_ Container[*SetIterator]  = (*Set)(nil)

	_ Finder[string, *ListIterator] = (*List)(nil)
	_ Finder[string, *MapIterator]  = (*Map)(nil)
	_ Finder[string, *SetIterator]  = (*Set)(nil)

	_ ValueIterator[string]            = (*ListIterator)(nil)
	_ ValueIterator[string]            = (*SetIterator)(nil)
	_ KeyValueIterator[string, string] = (*MapIterator)(nil)

	_ Cloner[*ListIterator] = (*ListIterator)(nil)
	_ Cloner[*MapIterator]  = (*MapIterator)(nil)
	_ Cloner[*SetIterator]  = (*SetIterator)(nil)
)
