package collections

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-macro-collections/strext"
)

// This file contains the textual forms of the List operations. Each one takes
// a single string argument, parses it with package strext and either applies
// the operation completely or returns an error without touching the list.

// parseIndex converts a textual index into a position.
//
// Any index is position 0 on an empty list. Otherwise the index must lie in
// [0, Count()]; Count() itself is the append point.
func (l *List) parseIndex(text string) (int, error) {
	n, err := strext.ParseIndex(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedArgument, err)
	}
	if l.IsEmpty() {
		return 0, nil
	}
	if n < 0 || n > l.Count() {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, n, l.Count())
	}
	return n, nil
}

// ItemArgs returns the item at a textual index.
func (l *List) ItemArgs(text string) (string, error) {
	position, err := l.parseIndex(text)
	if err != nil {
		return "", err
	}
	item, ok := l.Item(position)
	if !ok {
		return "", fmt.Errorf("%w: no item at %d", ErrNotFound, position)
	}
	return item, nil
}

// EraseArgs removes the item at a textual index.
func (l *List) EraseArgs(text string) error {
	position, err := l.parseIndex(text)
	if err != nil {
		return err
	}
	if !l.Erase(position) {
		return fmt.Errorf("%w: no item at %d", ErrNotFound, position)
	}
	return nil
}

// InsertArgs inserts items from text of the form "<index>,<items>", where
// <items> is split on the list delimiter:
//
//	l.InsertArgs("2,X,Y") // [A B C] → [A B X Y C]
//
// A comma followed by nothing inserts no items and succeeds.
func (l *List) InsertArgs(text string) error {
	comma := strings.IndexByte(text, ',')
	if comma < 0 {
		return fmt.Errorf("%w: insert needs <index>,<items>: %q", ErrMalformedArgument, text)
	}
	if comma == 0 {
		return fmt.Errorf("%w: insert index is missing: %q", ErrMalformedArgument, text)
	}
	position, err := l.parseIndex(text[:comma])
	if err != nil {
		return err
	}
	rest := text[comma+1:]
	if rest == "" {
		return nil
	}
	l.Insert(position, strext.Split(rest, l.delimiter)...)
	return nil
}

// AppendItems splits text on the list delimiter and appends every token,
// empty tokens included.
func (l *List) AppendItems(text string) {
	l.add(strext.Split(text, l.delimiter))
}

// ReplaceArgs replaces every occurrence of old with new, given text of the
// form "old,new". It returns the number of replaced items.
func (l *List) ReplaceArgs(text string) (int, error) {
	tokens := strext.Split(text, ",")
	if len(tokens) != 2 {
		return 0, fmt.Errorf("%w: replace needs exactly two items: %q", ErrMalformedArgument, text)
	}
	return l.Replace(tokens[0], tokens[1]), nil
}

// SpliceArgs returns a new list from text of the form "<start>[,<length>]".
//
// Missing arguments leave both ends at Count(), yielding an empty list. A
// start that does not parse also selects the end. A length that does not
// parse selects through the end of the list.
func (l *List) SpliceArgs(text string) *List {
	trimmed := strext.TrimSpace(text)
	if trimmed == "" {
		return NewList()
	}
	tokens := strext.Split(trimmed, ",")

	start, end := l.Count(), l.Count()
	if n, err := l.parseIndex(tokens[0]); err == nil {
		start = n
	}
	if len(tokens) == 2 {
		if n, err := l.parseIndex(tokens[1]); err == nil {
			end = start + n
		}
	}
	return l.span(start, end)
}
