package collections

import (
	"strconv"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Queue is a FIFO buffer of strings: Pop and Peek see the earliest pushed
// item.
type Queue struct {
	items *linkedlistqueue.Queue
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{items: linkedlistqueue.New()}
}

// Count returns the number of items.
func (q *Queue) Count() int { return q.items.Size() }

// IsEmpty reports whether the queue holds no items.
func (q *Queue) IsEmpty() bool { return q.items.Empty() }

// Clear removes every item.
func (q *Queue) Clear() { q.items.Clear() }

// Push adds item at the back of the queue.
func (q *Queue) Push(item string) { q.items.Enqueue(item) }

// Pop removes and returns the front item. It returns false when the queue is
// empty.
func (q *Queue) Pop() (string, bool) {
	v, ok := q.items.Dequeue()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Peek returns the front item without removing it. It returns false when the
// queue is empty.
func (q *Queue) Peek() (string, bool) {
	v, ok := q.items.Peek()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// String renders the queue as its decimal item count.
func (q *Queue) String() string { return strconv.Itoa(q.Count()) }
