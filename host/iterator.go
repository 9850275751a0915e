package host

import "github.com/hasbyte1/go-macro-collections/collections"

type iteratorMember int

const (
	iteratorReset iteratorMember = iota
	iteratorAdvance
	iteratorIsEnd
	iteratorValue
	iteratorClone
	iteratorKey
)

var (
	valueIteratorMembers = newMemberTable[iteratorMember]("Reset", "Advance", "IsEnd", "Value", "Clone")
	mapIteratorMembers   = newMemberTable[iteratorMember]("Reset", "Advance", "IsEnd", "Value", "Clone", "Key")
)

// cursor is the collections cursor API the host drives.
type cursor[I any] interface {
	collections.ValueIterator[string]
	collections.Cloner[I]
	String() string
}

type keyer interface {
	Key() (string, bool)
}

// Iterator is the host object for a collections cursor.
type Iterator[I cursor[I]] struct {
	it       I
	typeName string
	members  *memberTable[iteratorMember]
}

// NewListIterator wraps a list cursor as a "listiterator".
func NewListIterator(it *collections.ListIterator) *Iterator[*collections.ListIterator] {
	return &Iterator[*collections.ListIterator]{it: it, typeName: "listiterator", members: valueIteratorMembers}
}

// NewSetIterator wraps a set cursor as a "setiterator".
func NewSetIterator(it *collections.SetIterator) *Iterator[*collections.SetIterator] {
	return &Iterator[*collections.SetIterator]{it: it, typeName: "setiterator", members: valueIteratorMembers}
}

// NewMapIterator wraps a map cursor as a "mapiterator", which adds Key.
func NewMapIterator(it *collections.MapIterator) *Iterator[*collections.MapIterator] {
	return &Iterator[*collections.MapIterator]{it: it, typeName: "mapiterator", members: mapIteratorMembers}
}

// Cursor returns the wrapped cursor.
func (o *Iterator[I]) Cursor() I { return o.it }

// TypeName returns the cursor type name, such as "listiterator".
func (o *Iterator[I]) TypeName() string { return o.typeName }

// Members returns the cursor member names; only map cursors have Key.
func (o *Iterator[I]) Members() []string { return o.members.Names() }

// String renders the element under the cursor, or FALSE at the end.
func (o *Iterator[I]) String() string { return o.it.String() }

// FromString is not supported on cursors.
func (o *Iterator[I]) FromString(string) bool { return false }

// Releasable reports whether the cursor is a clone. Borrowed cursors belong
// to their collection.
func (o *Iterator[I]) Releasable() bool { return o.it.Cloned() }

// GetMember dispatches a cursor member. Clone returns a new owned cursor
// handle; Value and Key return FALSE at the end.
func (o *Iterator[I]) GetMember(member, _ string) (Result, error) {
	m, ok := o.members.lookup(member)
	if !ok {
		return Failure(nil), unknownMember(o, member)
	}

	switch m {
	case iteratorReset:
		o.it.Reset()
		return BoolResult(true), nil
	case iteratorAdvance:
		return BoolResult(o.it.Advance()), nil
	case iteratorIsEnd:
		return BoolResult(o.it.IsEnd()), nil
	case iteratorValue:
		return valueResult(o.it.Value())
	case iteratorKey:
		if k, ok := any(o.it).(keyer); ok {
			return valueResult(k.Key())
		}
	case iteratorClone:
		return HandleResult(&Iterator[I]{it: o.it.Clone(), typeName: o.typeName, members: o.members}), nil
	}
	return Failure(nil), unknownMember(o, member)
}

// valueResult turns the (value, ok) pair of a cursor read into a Result.
func valueResult(v string, ok bool) (Result, error) {
	if !ok {
		return Failure(collections.ErrNotFound), nil
	}
	return StringResult(v), nil
}
