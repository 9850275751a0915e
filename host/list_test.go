package host_test

import (
	"testing"

	"github.com/hasbyte1/go-macro-collections/collections"
	"github.com/hasbyte1/go-macro-collections/host"
)

func TestList_Members(t *testing.T) {
	l := newList()
	assertResult(t, call(t, l, "Append", "C,A,B"), "TRUE")
	assertResult(t, call(t, l, "Count", ""), "3")
	assertResult(t, call(t, l, "Contains", "A"), "TRUE")
	assertResult(t, call(t, l, "Contains", "Z"), "FALSE")
	assertResult(t, call(t, l, "Index", "B"), "2")
	assertResult(t, call(t, l, "Index", "Z"), "-1")
	assertResult(t, call(t, l, "Item", "0"), "C")
	assertResult(t, call(t, l, "Sort", ""), "TRUE")
	assertResult(t, call(t, l, "Item", "0"), "A")
	assertResult(t, call(t, l, "Reverse", ""), "TRUE")
	assertResult(t, call(t, l, "Item", "0"), "C")
	assertResult(t, call(t, l, "Insert", "1,X,X"), "TRUE")
	assertResult(t, call(t, l, "CountOf", "X"), "2")
	assertResult(t, call(t, l, "Replace", "X,Y"), "2")
	assertResult(t, call(t, l, "Remove", "Y"), "2")
	assertResult(t, call(t, l, "Erase", "0"), "TRUE")
	assertResult(t, call(t, l, "Head", ""), "B")
	assertResult(t, call(t, l, "Tail", ""), "A")
	assertResult(t, call(t, l, "Count", ""), "0")
	assertResult(t, call(t, l, "Clear", ""), "TRUE")
}

func TestList_Failures(t *testing.T) {
	l := newList("A")
	assertFalse(t, call(t, l, "Item", "1"), collections.ErrNotFound)
	assertFalse(t, call(t, l, "Item", "5"), collections.ErrIndexOutOfRange)
	assertFalse(t, call(t, l, "Erase", "q"), collections.ErrMalformedArgument)
	assertFalse(t, call(t, l, "Insert", "nocomma"), collections.ErrMalformedArgument)
	assertFalse(t, call(t, l, "Replace", "A"), collections.ErrMalformedArgument)

	for _, member := range []string{"Contains", "Index", "Item", "Insert", "Append", "Remove", "Erase", "Replace", "Find", "CountOf"} {
		assertFalse(t, call(t, l, member, ""), host.ErrMissingArgument)
	}
	assertResult(t, call(t, l, "Count", ""), "1")

	empty := newList()
	assertFalse(t, call(t, empty, "Head", ""), collections.ErrEmptyCollection)
	assertFalse(t, call(t, empty, "Tail", ""), collections.ErrEmptyCollection)
}

func TestList_Delimiter(t *testing.T) {
	l := newList()
	assertResult(t, call(t, l, "Delimiter", ""), ",")
	assertResult(t, call(t, l, "Delimiter", ";"), ",")
	assertResult(t, call(t, l, "Delimiter", ""), ";")
	call(t, l, "Append", "a;b,c")
	assertResult(t, call(t, l, "Item", "1"), "b,c")
}

func TestList_SpliceIsOwned(t *testing.T) {
	l := newList("A", "B", "C")
	r := call(t, l, "Splice", "1")
	if r.Kind != host.KindHandle {
		t.Fatalf("Splice kind = %v", r.Kind)
	}
	sub := r.Handle.(*host.List)
	if !sub.Releasable() {
		t.Fatal("spliced list should be releasable")
	}
	if l.Releasable() {
		t.Fatal("declared list should not be releasable")
	}
	assertItems(t, sub.Collection().All(), "B", "C")
	assertResult(t, call(t, l, "Splice", ""), "<list handle>")
	assertResult(t, call(t, call(t, l, "Splice", "").Handle, "Count", ""), "0")
}

func TestList_FromString(t *testing.T) {
	l := newList()
	if !l.FromString("A,B") || !l.FromString("") {
		t.Fatal("list FromString always succeeds")
	}
	assertItems(t, l.Collection().All(), "A,B")
	if l.String() != "1" {
		t.Fatalf("String = %q; want 1", l.String())
	}
}

func assertItems(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("items = %q; want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("items = %q; want %q", got, want)
		}
	}
}
