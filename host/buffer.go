package host

import (
	"github.com/hasbyte1/go-macro-collections/collections"
	"github.com/hasbyte1/go-macro-collections/strext"
)

type bufferMember int

const (
	bufferCount bufferMember = iota
	bufferPush
	bufferPop
	bufferIsEmpty
	bufferPeek
)

var bufferMembers = newMemberTable[bufferMember]("Count", "Push", "Pop", "IsEmpty", "Peek")

// buffer is the API shared by [collections.Stack] and [collections.Queue].
type buffer interface {
	Count() int
	IsEmpty() bool
	Push(item string)
	Pop() (string, bool)
	Peek() (string, bool)
	String() string
}

// Buffer is the host object for a stack or a queue. Both expose the same
// members and differ only in which end Pop and Peek read.
type Buffer struct {
	items    buffer
	typeName string
}

// NewStack wraps s as a "stack".
func NewStack(s *collections.Stack) *Buffer { return &Buffer{items: s, typeName: "stack"} }

// NewQueue wraps q as a "queue".
func NewQueue(q *collections.Queue) *Buffer { return &Buffer{items: q, typeName: "queue"} }

// TypeName returns "stack" or "queue".
func (o *Buffer) TypeName() string { return o.typeName }

// Members returns the member names shared by stacks and queues.
func (o *Buffer) Members() []string { return bufferMembers.Names() }

// String renders the element count.
func (o *Buffer) String() string { return o.items.String() }

// FromString pushes non-empty text but always reports failure.
func (o *Buffer) FromString(text string) bool {
	if text != "" {
		o.items.Push(text)
	}
	return false
}

// GetMember dispatches member. Pop and Peek return FALSE on an empty buffer.
func (o *Buffer) GetMember(member, arg string) (Result, error) {
	m, ok := bufferMembers.lookup(member)
	if !ok {
		return Failure(nil), unknownMember(o, member)
	}

	switch m {
	case bufferCount:
		return IntResult(o.items.Count()), nil
	case bufferPush:
		if arg == "" {
			return Failure(ErrMissingArgument), nil
		}
		if strext.IsBlank(arg) {
			return Failure(blankArgument(arg)), nil
		}
		o.items.Push(arg)
		return BoolResult(true), nil
	case bufferPop:
		return popResult(o.items.Pop())
	case bufferIsEmpty:
		return BoolResult(o.items.IsEmpty()), nil
	case bufferPeek:
		return popResult(o.items.Peek())
	}
	return Failure(nil), unknownMember(o, member)
}
