package collections

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/hasbyte1/go-macro-collections/strext"
)

// Map associates unique string keys with string values. Iteration follows
// byte-wise key order.
//
// The zero value is not usable; create maps with [NewMap].
type Map struct {
	entries *treemap.Map

	first *MapIterator
	found *MapIterator
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{entries: treemap.NewWithStringComparator()}
}

// Count returns the number of keys.
func (m *Map) Count() int { return m.entries.Size() }

// IsEmpty reports whether the map holds no keys.
func (m *Map) IsEmpty() bool { return m.entries.Empty() }

// Clear removes every key.
func (m *Map) Clear() { m.entries.Clear() }

// Contains reports whether key is present.
func (m *Map) Contains(key string) bool {
	_, found := m.entries.Get(key)
	return found
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (string, bool) {
	v, found := m.entries.Get(key)
	if !found {
		return "", false
	}
	return v.(string), true
}

// Add stores value under key, replacing any previous value.
func (m *Map) Add(key, value string) { m.entries.Put(key, value) }

// Remove deletes key. It returns false when key is absent.
func (m *Map) Remove(key string) bool {
	if !m.Contains(key) {
		return false
	}
	m.entries.Remove(key)
	return true
}

// AddArgs adds an entry from text of the form "key,value". Both parts are
// trimmed and must be non-empty; exactly one comma is allowed.
func (m *Map) AddArgs(text string) error {
	tokens := strext.Split(text, ",")
	if len(tokens) != 2 {
		return fmt.Errorf("%w: add needs exactly <key>,<value>: %q", ErrMalformedArgument, text)
	}
	key, value := strext.TrimSpace(tokens[0]), strext.TrimSpace(tokens[1])
	if key == "" || value == "" {
		return fmt.Errorf("%w: empty key or value: %q", ErrMalformedArgument, text)
	}
	m.Add(key, value)
	return nil
}

// First returns the map's First slot, reset to the smallest key. Every call
// returns the same cursor.
func (m *Map) First() *MapIterator {
	if m.first == nil {
		m.first = newMapIterator(m.entries)
	} else {
		m.first.Reset()
	}
	return m.first
}

// Find returns the map's Find slot, positioned on key or at the end when key
// is absent. Every call returns the same cursor.
func (m *Map) Find(key string) *MapIterator {
	if m.found == nil {
		m.found = newMapIterator(m.entries)
	}
	it := m.found
	it.seek(func(gi *treemap.Iterator) bool { return gi.Key().(string) >= key })
	if k, ok := it.Key(); ok && k != key {
		it.finish()
	}
	return it
}

// Keys returns the keys in order.
func (m *Map) Keys() []string { return toStrings(m.entries.Keys()) }

// Entries returns the key/value pairs in key order.
func (m *Map) Entries() []Pair[string, string] {
	out := make([]Pair[string, string], 0, m.Count())
	gi := m.entries.Iterator()
	for gi.Next() {
		out = append(out, Pair[string, string]{First: gi.Key().(string), Second: gi.Value().(string)})
	}
	return out
}

// String renders the map as its decimal key count.
func (m *Map) String() string { return strconv.Itoa(m.Count()) }

// MapIterator is a cursor over a [Map].
type MapIterator struct {
	cursor[treemap.Iterator, *treemap.Iterator]
	entries *treemap.Map
	cloned  bool
}

func newMapIterator(entries *treemap.Map) *MapIterator {
	it := &MapIterator{entries: entries}
	it.it = entries.Iterator()
	it.Reset()
	return it
}

// Key returns the key under the cursor, or false at the end or when the key
// has since been removed from the map.
func (it *MapIterator) Key() (string, bool) {
	k, _, ok := it.entry()
	return k, ok
}

// Value returns the current value for the key under the cursor, or false at
// the end or when the key has since been removed from the map.
func (it *MapIterator) Value() (string, bool) {
	_, v, ok := it.entry()
	return v, ok
}

func (it *MapIterator) entry() (key, value string, ok bool) {
	if it.IsEnd() {
		return "", "", false
	}
	key = it.it.Key().(string)
	v, found := it.entries.Get(key)
	if !found {
		return "", "", false
	}
	return key, v.(string), true
}

// Clone returns an independent cursor at the same position.
func (it *MapIterator) Clone() *MapIterator {
	cp := *it
	cp.cloned = true
	return &cp
}

// Cloned reports whether the cursor came from [MapIterator.Clone].
func (it *MapIterator) Cloned() bool { return it.cloned }

// String renders the entry as "(key, value)", substituting "FALSE" for a
// missing key or value at the end.
func (it *MapIterator) String() string {
	p := Pair[string, string]{First: "FALSE", Second: "FALSE"}
	if k, ok := it.Key(); ok {
		p.First = k
	}
	if v, ok := it.Value(); ok {
		p.Second = v
	}
	return p.String()
}
