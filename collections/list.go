package collections

import (
	"strconv"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// DefaultDelimiter separates items in the textual arguments of a new [List].
const DefaultDelimiter = ","

// List is an ordered sequence of strings. Duplicates are allowed and
// insertion order is iteration order.
//
// The zero value is not usable; create lists with [NewList].
type List struct {
	items     *arraylist.List
	delimiter string

	// Cursor slots owned by the list and replaced by First and Find.
	first *ListIterator
	found *ListIterator
}

// NewList creates a List holding items in order, with [DefaultDelimiter].
func NewList(items ...string) *List {
	l := &List{
		items:     arraylist.New(),
		delimiter: DefaultDelimiter,
	}
	l.add(items)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Container
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of items.
func (l *List) Count() int { return l.items.Size() }

// IsEmpty reports whether the list holds no items.
func (l *List) IsEmpty() bool { return l.items.Empty() }

// Clear removes every item.
func (l *List) Clear() { l.items.Clear() }

// First returns the list's First slot, reset to the first item. Every call
// returns the same cursor, so earlier results are repositioned too.
func (l *List) First() *ListIterator {
	if l.first == nil {
		l.first = newListIterator(l.items)
	} else {
		l.first.Reset()
	}
	return l.first
}

// Find returns the list's Find slot, positioned on the first occurrence of
// item or at the end when item is absent. Every call returns the same cursor.
func (l *List) Find(item string) *ListIterator {
	if l.found == nil {
		l.found = newListIterator(l.items)
	}
	l.found.seek(func(gi *arraylist.Iterator) bool { return gi.Value() == item })
	return l.found
}

// All returns a copy of the items.
func (l *List) All() []string {
	return toStrings(l.items.Values())
}

// String renders the list as its decimal item count.
func (l *List) String() string { return strconv.Itoa(l.Count()) }

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether item occurs in the list.
func (l *List) Contains(item string) bool { return l.items.Contains(item) }

// IndexOf returns the position of the first occurrence of item, or -1.
func (l *List) IndexOf(item string) int { return l.items.IndexOf(item) }

// CountOf returns how many times item occurs in the list.
func (l *List) CountOf(item string) int {
	n := 0
	for _, v := range l.items.Values() {
		if v == item {
			n++
		}
	}
	return n
}

// Item returns the item at position. It returns false when position is
// outside [0, Count()-1].
func (l *List) Item(position int) (string, bool) {
	v, ok := l.items.Get(position)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Append adds item at the tail.
func (l *List) Append(item string) { l.items.Add(item) }

// Insert inserts items before position; position == Count() appends. It
// returns false and leaves the list unchanged when position is outside
// [0, Count()].
func (l *List) Insert(position int, items ...string) bool {
	if position < 0 || position > l.Count() {
		return false
	}
	if len(items) == 0 {
		return true
	}
	l.items.Insert(position, toValues(items)...)
	return true
}

// Erase removes the item at position. It returns false when position is
// outside [0, Count()-1].
func (l *List) Erase(position int) bool {
	if position < 0 || position >= l.Count() {
		return false
	}
	l.items.Remove(position)
	return true
}

// Remove removes every occurrence of item and returns how many were removed.
func (l *List) Remove(item string) int {
	kept := make([]interface{}, 0, l.Count())
	for _, v := range l.items.Values() {
		if v != item {
			kept = append(kept, v)
		}
	}
	removed := l.Count() - len(kept)
	if removed == 0 {
		return 0
	}
	l.items.Clear()
	l.items.Add(kept...)
	return removed
}

// Replace replaces every occurrence of old with replacement in place and
// returns how many items were replaced.
func (l *List) Replace(old, replacement string) int {
	n := 0
	for i, v := range l.items.Values() {
		if v == old {
			l.items.Set(i, replacement)
			n++
		}
	}
	return n
}

// Sort sorts the items in ascending byte-wise order.
func (l *List) Sort() { l.items.Sort(utils.StringComparator) }

// Reverse reverses the item order in place.
func (l *List) Reverse() {
	for i, j := 0, l.Count()-1; i < j; i, j = i+1, j-1 {
		l.items.Swap(i, j)
	}
}

// Head removes and returns the first item. It returns false when the list
// is empty.
func (l *List) Head() (string, bool) {
	v, ok := l.Item(0)
	if ok {
		l.items.Remove(0)
	}
	return v, ok
}

// Tail removes and returns the last item. It returns false when the list
// is empty.
func (l *List) Tail() (string, bool) {
	last := l.Count() - 1
	v, ok := l.Item(last)
	if ok {
		l.items.Remove(last)
	}
	return v, ok
}

// Delimiter returns the delimiter used to split textual item sequences.
func (l *List) Delimiter() string { return l.delimiter }

// SetDelimiter replaces the delimiter used by [List.InsertArgs] and
// [List.AppendItems] and returns the previous one.
func (l *List) SetDelimiter(delimiter string) string {
	old := l.delimiter
	l.delimiter = delimiter
	return old
}

// ─────────────────────────────────────────────────────────────────────────────
// Splicing
// ─────────────────────────────────────────────────────────────────────────────

// Splice returns a new list with the items from start to the end. The result
// is empty when start is outside [0, Count()-1].
func (l *List) Splice(start int) *List {
	return l.span(start, l.Count())
}

// SpliceN returns a new list with at most length items starting at start.
// The result is empty when start is outside [0, Count()-1] or length <= 0,
// and holds fewer than length items when the list ends first.
func (l *List) SpliceN(start, length int) *List {
	if length <= 0 {
		return NewList()
	}
	end := l.Count()
	if length < end-start {
		end = start + length
	}
	return l.span(start, end)
}

// span copies the items in [start, end) into a new list.
func (l *List) span(start, end int) *List {
	if end > l.Count() {
		end = l.Count()
	}
	if start < 0 || start >= end {
		return NewList()
	}
	return NewList(l.All()[start:end]...)
}

func (l *List) add(items []string) {
	if len(items) > 0 {
		l.items.Add(toValues(items)...)
	}
}

func toValues(items []string) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func toStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iterator
// ─────────────────────────────────────────────────────────────────────────────

// ListIterator is a cursor over a [List].
type ListIterator struct {
	cursor[arraylist.Iterator, *arraylist.Iterator]
	items  *arraylist.List
	cloned bool
}

func newListIterator(items *arraylist.List) *ListIterator {
	it := &ListIterator{items: items}
	it.it = items.Iterator()
	it.Reset()
	return it
}

// Value returns the item under the cursor, or false at the end.
func (it *ListIterator) Value() (string, bool) {
	if it.IsEnd() {
		return "", false
	}
	v, ok := it.items.Get(it.it.Index())
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Clone returns an independent cursor at the same position.
func (it *ListIterator) Clone() *ListIterator {
	cp := *it
	cp.cloned = true
	return &cp
}

// Cloned reports whether the cursor came from [ListIterator.Clone].
func (it *ListIterator) Cloned() bool { return it.cloned }

// String renders the item under the cursor, or "FALSE" at the end.
func (it *ListIterator) String() string {
	v, ok := it.Value()
	if !ok {
		return "FALSE"
	}
	return v
}
