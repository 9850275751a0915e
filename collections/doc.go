// Package collections provides mutable string collections with cursor
// iterators, designed to be driven by single-argument textual commands from a
// macro-scripting host.
//
// # Overview
//
// Five collection types are provided:
//
//   - [List]: ordered sequence, duplicates allowed, positional access.
//   - [Map]: unique string keys to string values, iterated in key order.
//   - [Set]: unique strings, iterated in order.
//   - [Stack]: LIFO buffer.
//   - [Queue]: FIFO buffer.
//
// List, Map and Set satisfy [Container] and hand out cursors through First
// and Find:
//
//	l := collections.NewList("A", "B", "C")
//	for it := l.First(); !it.IsEnd(); it.Advance() {
//	    v, _ := it.Value()
//	    fmt.Println(v)
//	}
//
// # Textual mutation protocol
//
// Every operation that takes structured parameters also has an *Args form
// accepting one string, split with package [strext]:
//
//	l.InsertArgs("2,X,Y")   // insert X and Y before position 2
//	l.SpliceArgs("1,2")     // new list with 2 items starting at position 1
//	m.AddArgs("key, value") // trimmed key and value
//	s.AddItems("A,B,A")     // adds A and B
//
// A textual operation either applies completely or not at all. Failures
// wrap [ErrMalformedArgument], [ErrIndexOutOfRange] or [ErrNotFound].
//
// # Cursor lifetime
//
// A cursor references its collection's backing store; it never copies it.
// Cursors returned by First and Find are borrowed: the collection keeps one
// First slot and one Find slot, and every call repositions and returns the
// same slot. A borrowed cursor should not be used after the collection is
// mutated. Reading a cursor whose element has since been removed, including
// after Clear, reports false rather than a stale value.
//
// Clone returns an independent cursor at the same position over the same
// store. Clones are owned by the caller and report Cloned() == true.
//
// # Concurrency
//
// Collections and cursors are not safe for concurrent use. A host drives
// each instance from a single goroutine.
package collections
