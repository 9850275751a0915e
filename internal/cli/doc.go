// Package cli implements the collsh command: an interactive shell and script
// runner for the host collection types.
//
// Each input line is split into words with shell quoting rules. A line is
// either a built-in command or a member call:
//
//	declare l list
//	l.Append "A,B,C"
//	l.Splice 1        # prints <list handle @1>
//	@1.Count
//	print l
//	release @1
//	l.Find B          # prints <listiterator handle @l:find>
//	@l:find.Value
//
// $name expands to the printed form of the variable name.
package cli
