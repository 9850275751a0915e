// Package host exposes the collections to a macro-scripting host.
//
// Every collection and cursor is wrapped in an [Object], which answers named
// member invocations with a single optional string argument and writes one
// [Result]: a boolean, an integer, a string or a handle to a new object.
// Member names are matched case-insensitively against a closed table per
// type.
//
// A [Registry] maps declarable type names ("list", "map", "set", "stack",
// "queue") to factories, and a [Session] holds named variables and the
// handles produced by member calls:
//
//	s := host.NewSession()
//	_ = s.Declare("l", "list")
//	_, _ = s.Invoke("l", "Append", "A,B,C")
//	r, _ := s.Invoke("l", "Splice", "1")
//	fmt.Println(r) // <list handle @1>
//	r, _ = s.Invoke("l", "First", "")
//	fmt.Println(r) // <listiterator handle @l:first>
//
// Owned handles get a fresh "@N" name. Borrowed cursors from First and Find
// reuse one name per owner and slot and disappear with their owner.
//
// Failed operations yield FALSE; [Result.Err] carries the reason. Invoke
// returns an error only when the variable or member does not exist.
package host
