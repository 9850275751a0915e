// Package strext provides the string helpers that drive the textual mutation
// protocol of the collection types: splitting on a set of delimiter
// characters, trimming a set of characters from either end, and parsing a
// textual index.
//
// # Splitting
//
// [Split] produces one token for every gap between delimiters, so adjacent
// delimiters and delimiters at either end produce empty tokens:
//
//	strext.Split("A,,B", ",")  // → ["A" "" "B"]
//	strext.Split(",A", ",")    // → ["" "A"]
//	strext.Split("A;B,C", ",;") // → ["A" "B" "C"]
//
// An empty delimiter set returns the whole source as the only token.
// [SplitNonEmpty] removes the empty tokens after splitting.
//
// # Trimming
//
// [Trim], [TrimStart] and [TrimEnd] strip any character of a cut set. A
// string made only of cut characters trims to "". [TrimSpace] uses
// [Whitespace] as the cut set.
//
// # Index parsing
//
// [ParseIndex] trims its input and parses a signed base-10 integer. Trailing
// garbage, an empty token or an out-of-range value fails with
// [ErrInvalidIndex]. Bounds checking is the caller's job.
package strext
