package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-macro-collections/collections"
)

func TestMap_AddOverwrites(t *testing.T) {
	m := collections.NewMap()
	m.Add("k", "1")
	m.Add("k", "2")
	if m.Count() != 1 {
		t.Fatalf("Count = %d; want 1", m.Count())
	}
	if v, ok := m.Get("k"); !ok || v != "2" {
		t.Fatalf("Get(k) = %q, %v; want 2, true", v, ok)
	}
}

func TestMap_ContainsRemove(t *testing.T) {
	m := collections.NewMap()
	m.Add("k", "v")
	if !m.Contains("k") || m.Contains("v") {
		t.Fatal("Contains should test keys only")
	}
	if !m.Remove("k") {
		t.Fatal("Remove(k) failed")
	}
	if m.Remove("k") {
		t.Fatal("second Remove(k) should fail")
	}
	if !m.IsEmpty() {
		t.Fatal("map should be empty")
	}
}

func TestMap_AddArgs(t *testing.T) {
	tests := []struct {
		text      string
		key, val  string
		malformed bool
	}{
		{"k,v", "k", "v", false},
		{" k , v ", "k", "v", false},
		{"k", "", "", true},
		{"k,v,w", "", "", true},
		{",v", "", "", true},
		{"k,", "", "", true},
		{" , ", "", "", true},
		{"", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m := collections.NewMap()
			err := m.AddArgs(tt.text)
			if tt.malformed {
				if !errors.Is(err, collections.ErrMalformedArgument) {
					t.Fatalf("AddArgs(%q) err = %v; want ErrMalformedArgument", tt.text, err)
				}
				if !m.IsEmpty() {
					t.Fatal("failed AddArgs must not add")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if v, _ := m.Get(tt.key); v != tt.val {
				t.Fatalf("Get(%q) = %q; want %q", tt.key, v, tt.val)
			}
		})
	}
}

func TestMap_IteratesInKeyOrder(t *testing.T) {
	m := collections.NewMap()
	m.Add("b", "2")
	m.Add("c", "3")
	m.Add("a", "1")
	var keys, values []string
	for it := m.First(); !it.IsEnd(); it.Advance() {
		k, _ := it.Key()
		v, _ := it.Value()
		keys = append(keys, k)
		values = append(values, v)
	}
	assertItems(t, keys, []string{"a", "b", "c"})
	assertItems(t, values, []string{"1", "2", "3"})
	assertItems(t, m.Keys(), keys)
}

func TestMap_Find(t *testing.T) {
	m := collections.NewMap()
	m.Add("a", "1")
	m.Add("c", "3")

	it := m.Find("c")
	if k, ok := it.Key(); !ok || k != "c" {
		t.Fatalf("Find(c).Key = %q, %v", k, ok)
	}
	for _, absent := range []string{"b", "d", ""} {
		if it := m.Find(absent); !it.IsEnd() {
			t.Errorf("Find(%q) should be at end", absent)
		}
	}
}

func TestMapIterator_String(t *testing.T) {
	m := collections.NewMap()
	m.Add("k", "v")
	it := m.First()
	if got := it.String(); got != "(k, v)" {
		t.Fatalf("String = %q; want %q", got, "(k, v)")
	}
	it.Advance()
	if got := it.String(); got != "(FALSE, FALSE)" {
		t.Fatalf("String at end = %q; want %q", got, "(FALSE, FALSE)")
	}
	if _, ok := it.Key(); ok {
		t.Fatal("Key at end should fail")
	}
}

func TestMap_Entries(t *testing.T) {
	m := collections.NewMap()
	m.Add("y", "2")
	m.Add("x", "1")
	got := m.Entries()
	if len(got) != 2 || got[0].First != "x" || got[1].Second != "2" {
		t.Fatalf("Entries = %v", got)
	}
	if got[0].String() != "(x, 1)" {
		t.Fatalf("Pair.String = %q", got[0].String())
	}
}

func TestMap_StringIsCount(t *testing.T) {
	m := collections.NewMap()
	m.Add("k", "v")
	if m.String() != "1" {
		t.Fatalf("String = %q; want 1", m.String())
	}
}
