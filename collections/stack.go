package collections

import (
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Stack is a LIFO buffer of strings: Pop and Peek see the most recently
// pushed item.
type Stack struct {
	items *arraystack.Stack
}

// NewStack creates an empty Stack.
func NewStack() *Stack {
	return &Stack{items: arraystack.New()}
}

// Count returns the number of items.
func (s *Stack) Count() int { return s.items.Size() }

// IsEmpty reports whether the stack holds no items.
func (s *Stack) IsEmpty() bool { return s.items.Empty() }

// Clear removes every item.
func (s *Stack) Clear() { s.items.Clear() }

// Push puts item on top of the stack.
func (s *Stack) Push(item string) { s.items.Push(item) }

// Pop removes and returns the top item. It returns false when the stack is
// empty.
func (s *Stack) Pop() (string, bool) {
	v, ok := s.items.Pop()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Peek returns the top item without removing it. It returns false when the
// stack is empty.
func (s *Stack) Peek() (string, bool) {
	v, ok := s.items.Peek()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// String renders the stack as its decimal item count.
func (s *Stack) String() string { return strconv.Itoa(s.Count()) }
