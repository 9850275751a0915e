package host

import "github.com/hasbyte1/go-macro-collections/collections"

type listMember int

const (
	listCount listMember = iota
	listClear
	listContains
	listSplice
	listIndex
	listItem
	listInsert
	listSort
	listReverse
	listAppend
	listRemove
	listErase
	listReplace
	listFirst
	listFind
	listHead
	listTail
	listCountOf
	listDelimiter
)

var listMembers = newMemberTable[listMember](
	"Count", "Clear", "Contains", "Splice", "Index", "Item", "Insert", "Sort",
	"Reverse", "Append", "Remove", "Erase", "Replace", "First", "Find", "Head",
	"Tail", "CountOf", "Delimiter",
)

func (m listMember) needsArgument() bool {
	switch m {
	case listContains, listIndex, listItem, listInsert, listAppend, listRemove,
		listErase, listReplace, listFind, listCountOf:
		return true
	}
	return false
}

// List is the host object for a [collections.List].
type List struct {
	list  *collections.List
	owned bool
}

// NewList wraps l.
func NewList(l *collections.List) *List { return &List{list: l} }

// Collection returns the wrapped list.
func (o *List) Collection() *collections.List { return o.list }

// TypeName returns "list".
func (o *List) TypeName() string { return "list" }

// Members returns the list member names in declaration order.
func (o *List) Members() []string { return listMembers.Names() }

// String renders the item count.
func (o *List) String() string { return o.list.String() }

// Releasable reports whether the list was produced by Splice, which hands
// ownership to the caller.
func (o *List) Releasable() bool { return o.owned }

// FromString appends text as a single item. Empty text is ignored. It always
// reports success.
func (o *List) FromString(text string) bool {
	if text != "" {
		o.list.Append(text)
	}
	return true
}

// GetMember dispatches member with its textual argument. Members that need
// an argument return FALSE when arg is empty; an unknown member returns
// [ErrUnknownMember].
func (o *List) GetMember(member, arg string) (Result, error) {
	m, ok := listMembers.lookup(member)
	if !ok {
		return Failure(nil), unknownMember(o, member)
	}
	if arg == "" && m.needsArgument() {
		return Failure(ErrMissingArgument), nil
	}

	l := o.list
	switch m {
	case listCount:
		return IntResult(l.Count()), nil
	case listClear:
		l.Clear()
		return BoolResult(true), nil
	case listContains:
		return BoolResult(l.Contains(arg)), nil
	case listSplice:
		return HandleResult(&List{list: l.SpliceArgs(arg), owned: true}), nil
	case listIndex:
		return IntResult(l.IndexOf(arg)), nil
	case listItem:
		item, err := l.ItemArgs(arg)
		if err != nil {
			return Failure(err), nil
		}
		return StringResult(item), nil
	case listInsert:
		if err := l.InsertArgs(arg); err != nil {
			return Failure(err), nil
		}
		return BoolResult(true), nil
	case listSort:
		l.Sort()
		return BoolResult(true), nil
	case listReverse:
		l.Reverse()
		return BoolResult(true), nil
	case listAppend:
		l.AppendItems(arg)
		return BoolResult(true), nil
	case listRemove:
		return IntResult(l.Remove(arg)), nil
	case listErase:
		if err := l.EraseArgs(arg); err != nil {
			return Failure(err), nil
		}
		return BoolResult(true), nil
	case listReplace:
		n, err := l.ReplaceArgs(arg)
		if err != nil {
			return Failure(err), nil
		}
		return IntResult(n), nil
	case listFirst:
		return HandleResult(NewListIterator(l.First())), nil
	case listFind:
		return HandleResult(NewListIterator(l.Find(arg))), nil
	case listHead:
		return popResult(l.Head())
	case listTail:
		return popResult(l.Tail())
	case listCountOf:
		return IntResult(l.CountOf(arg)), nil
	case listDelimiter:
		if arg == "" {
			return StringResult(l.Delimiter()), nil
		}
		return StringResult(l.SetDelimiter(arg)), nil
	}
	return Failure(nil), unknownMember(o, member)
}

// popResult turns the (value, ok) pair of a read at either end of a
// collection into a Result.
func popResult(v string, ok bool) (Result, error) {
	if !ok {
		return Failure(collections.ErrEmptyCollection), nil
	}
	return StringResult(v), nil
}
