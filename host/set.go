package host

import (
	"fmt"

	"github.com/hasbyte1/go-macro-collections/collections"
	"github.com/hasbyte1/go-macro-collections/strext"
)

type setMember int

const (
	setCount setMember = iota
	setClear
	setContains
	setAdd
	setRemove
	setFirst
	setFind
)

var setMembers = newMemberTable[setMember]("Count", "Clear", "Contains", "Add", "Remove", "First", "Find")

// Set is the host object for a [collections.Set].
type Set struct {
	s *collections.Set
}

// NewSet wraps s.
func NewSet(s *collections.Set) *Set { return &Set{s: s} }

// Collection returns the wrapped set.
func (o *Set) Collection() *collections.Set { return o.s }

// TypeName returns "set".
func (o *Set) TypeName() string { return "set" }

// Members returns the set member names.
func (o *Set) Members() []string { return setMembers.Names() }

// String renders the item count.
func (o *Set) String() string { return o.s.String() }

// FromString adds text as a single member. Empty text is ignored. It always
// reports success.
func (o *Set) FromString(text string) bool {
	if text != "" {
		o.s.Add(text)
	}
	return true
}

// GetMember dispatches member. Add rejects a blank argument.
func (o *Set) GetMember(member, arg string) (Result, error) {
	m, ok := setMembers.lookup(member)
	if !ok {
		return Failure(nil), unknownMember(o, member)
	}

	switch m {
	case setCount:
		return IntResult(o.s.Count()), nil
	case setClear:
		o.s.Clear()
		return BoolResult(true), nil
	case setFirst:
		return HandleResult(NewSetIterator(o.s.First())), nil
	}

	if arg == "" {
		return Failure(ErrMissingArgument), nil
	}
	switch m {
	case setContains:
		return BoolResult(o.s.Contains(arg)), nil
	case setAdd:
		if strext.IsBlank(arg) {
			return Failure(blankArgument(arg)), nil
		}
		o.s.AddItems(arg)
		return BoolResult(true), nil
	case setRemove:
		return BoolResult(o.s.Remove(arg)), nil
	case setFind:
		return HandleResult(NewSetIterator(o.s.Find(arg))), nil
	}
	return Failure(nil), unknownMember(o, member)
}

func blankArgument(arg string) error {
	return fmt.Errorf("%w: blank argument %q", collections.ErrMalformedArgument, arg)
}
