package host_test

import (
	"testing"

	"github.com/hasbyte1/go-macro-collections/collections"
	"github.com/hasbyte1/go-macro-collections/host"
)

func TestIterator_Members(t *testing.T) {
	it := call(t, newList("A", "B"), "First", "").Handle
	assertResult(t, call(t, it, "IsEnd", ""), "FALSE")
	assertResult(t, call(t, it, "Value", ""), "A")
	assertResult(t, call(t, it, "Advance", ""), "TRUE")
	assertResult(t, call(t, it, "Advance", ""), "FALSE")
	assertFalse(t, call(t, it, "Value", ""), collections.ErrNotFound)
	assertResult(t, call(t, it, "Advance", ""), "FALSE")
	assertResult(t, call(t, it, "Reset", ""), "TRUE")
	assertResult(t, call(t, it, "Value", ""), "A")
	if it.FromString("x") {
		t.Fatal("iterator FromString reports failure")
	}
}

func TestIterator_Clone(t *testing.T) {
	it := call(t, newList("A", "B", "C"), "First", "").Handle
	clone := call(t, it, "Clone", "").Handle
	if clone.TypeName() != "listiterator" {
		t.Fatalf("clone type = %q", clone.TypeName())
	}
	for call(t, it, "Advance", "").OK() {
	}
	assertResult(t, call(t, it, "IsEnd", ""), "TRUE")
	assertResult(t, call(t, clone, "Value", ""), "A")

	if it.(host.Releaser).Releasable() {
		t.Fatal("borrowed cursor must not be releasable")
	}
	if !clone.(host.Releaser).Releasable() {
		t.Fatal("clone must be releasable")
	}
}

func TestIterator_FindAbsent(t *testing.T) {
	it := call(t, newList("A"), "Find", "Z").Handle
	assertResult(t, call(t, it, "IsEnd", ""), "TRUE")
	if it.String() != "FALSE" {
		t.Fatalf("String = %q; want FALSE", it.String())
	}
}

func TestIterator_Cursor(t *testing.T) {
	l := collections.NewList("A")
	it := host.NewListIterator(l.First())
	if v, _ := it.Cursor().Value(); v != "A" {
		t.Fatalf("Cursor().Value() = %q", v)
	}
}
