package collections

import (
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/hasbyte1/go-macro-collections/strext"
)

// Set holds unique strings. Iteration follows byte-wise order.
//
// The zero value is not usable; create sets with [NewSet].
type Set struct {
	items *treeset.Set

	first *SetIterator
	found *SetIterator
}

// NewSet creates a Set holding items.
func NewSet(items ...string) *Set {
	s := &Set{items: treeset.NewWithStringComparator()}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Count returns the number of items.
func (s *Set) Count() int { return s.items.Size() }

// IsEmpty reports whether the set holds no items.
func (s *Set) IsEmpty() bool { return s.items.Empty() }

// Clear removes every item.
func (s *Set) Clear() { s.items.Clear() }

// Contains reports whether item is present.
func (s *Set) Contains(item string) bool { return s.items.Contains(item) }

// Add inserts item. Adding an item already present does nothing.
func (s *Set) Add(item string) { s.items.Add(item) }

// Remove deletes item. It returns false when item is absent.
func (s *Set) Remove(item string) bool {
	if !s.Contains(item) {
		return false
	}
	s.items.Remove(item)
	return true
}

// AddItems splits text on "," and adds every token. Tokens are neither
// trimmed nor filtered, so an empty text adds the empty string.
func (s *Set) AddItems(text string) {
	for _, item := range strext.Split(text, ",") {
		s.Add(item)
	}
}

// First returns the set's First slot, reset to the smallest item. Every call
// returns the same cursor.
func (s *Set) First() *SetIterator {
	if s.first == nil {
		s.first = newSetIterator(s.items)
	} else {
		s.first.Reset()
	}
	return s.first
}

// Find returns the set's Find slot, positioned on item or at the end when
// item is absent. Every call returns the same cursor.
func (s *Set) Find(item string) *SetIterator {
	if s.found == nil {
		s.found = newSetIterator(s.items)
	}
	it := s.found
	it.seek(func(gi *treeset.Iterator) bool { return gi.Value().(string) >= item })
	if v, ok := it.Value(); ok && v != item {
		it.finish()
	}
	return it
}

// All returns the items in order.
func (s *Set) All() []string { return toStrings(s.items.Values()) }

// String renders the set as its decimal item count.
func (s *Set) String() string { return strconv.Itoa(s.Count()) }

// SetIterator is a cursor over a [Set].
type SetIterator struct {
	cursor[treeset.Iterator, *treeset.Iterator]
	items  *treeset.Set
	cloned bool
}

func newSetIterator(items *treeset.Set) *SetIterator {
	it := &SetIterator{items: items}
	it.it = items.Iterator()
	it.Reset()
	return it
}

// Value returns the item under the cursor, or false at the end or when the
// item has since been removed from the set.
func (it *SetIterator) Value() (string, bool) {
	if it.IsEnd() {
		return "", false
	}
	v := it.it.Value().(string)
	if !it.items.Contains(v) {
		return "", false
	}
	return v, true
}

// Clone returns an independent cursor at the same position.
func (it *SetIterator) Clone() *SetIterator {
	cp := *it
	cp.cloned = true
	return &cp
}

// Cloned reports whether the cursor came from [SetIterator.Clone].
func (it *SetIterator) Cloned() bool { return it.cloned }

// String renders the item under the cursor, or "FALSE" at the end.
func (it *SetIterator) String() string {
	v, ok := it.Value()
	if !ok {
		return "FALSE"
	}
	return v
}
