package host

import "github.com/hasbyte1/go-macro-collections/collections"

type mapMember int

const (
	mapCount mapMember = iota
	mapClear
	mapContains
	mapAdd
	mapRemove
	mapFirst
	mapFind
)

var mapMembers = newMemberTable[mapMember]("Count", "Clear", "Contains", "Add", "Remove", "First", "Find")

// Map is the host object for a [collections.Map].
type Map struct {
	m *collections.Map
}

// NewMap wraps m.
func NewMap(m *collections.Map) *Map { return &Map{m: m} }

// Collection returns the wrapped map.
func (o *Map) Collection() *collections.Map { return o.m }

// TypeName returns "map".
func (o *Map) TypeName() string { return "map" }

// Members returns the map member names.
func (o *Map) Members() []string { return mapMembers.Names() }

// String renders the key count.
func (o *Map) String() string { return o.m.String() }

// FromString ignores text: a single token carries no key and value pair.
func (o *Map) FromString(string) bool { return false }

// GetMember dispatches member. Add takes "key,value"; Contains, Remove and
// Find take a key.
func (o *Map) GetMember(member, arg string) (Result, error) {
	m, ok := mapMembers.lookup(member)
	if !ok {
		return Failure(nil), unknownMember(o, member)
	}

	switch m {
	case mapCount:
		return IntResult(o.m.Count()), nil
	case mapClear:
		o.m.Clear()
		return BoolResult(true), nil
	case mapFirst:
		return HandleResult(NewMapIterator(o.m.First())), nil
	}

	if arg == "" {
		return Failure(ErrMissingArgument), nil
	}
	switch m {
	case mapContains:
		return BoolResult(o.m.Contains(arg)), nil
	case mapAdd:
		if err := o.m.AddArgs(arg); err != nil {
			return Failure(err), nil
		}
		return BoolResult(true), nil
	case mapRemove:
		return BoolResult(o.m.Remove(arg)), nil
	case mapFind:
		return HandleResult(NewMapIterator(o.m.Find(arg))), nil
	}
	return Failure(nil), unknownMember(o, member)
}
