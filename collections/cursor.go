package collections

// traversal is the subset of the gods iterator API a cursor drives.
type traversal interface {
	Begin()
	Next() bool
}

// cursor couples a gods iterator, which owns the traversal position, with the
// end sentinel. Copying a cursor yields an independent position over the
// same backing store.
type cursor[T any, P interface {
	*T
	traversal
}] struct {
	it  T
	end bool
}

// Reset positions the cursor on the first element, or at the end.
func (c *cursor[T, P]) Reset() {
	p := P(&c.it)
	p.Begin()
	c.end = !p.Next()
}

// Advance moves to the next element and reports whether one exists.
func (c *cursor[T, P]) Advance() bool {
	if c.end {
		return false
	}
	c.end = !P(&c.it).Next()
	return !c.end
}

// IsEnd reports whether the cursor is at the end sentinel.
func (c *cursor[T, P]) IsEnd() bool {
	return c.end
}

// seek resets the cursor and advances until stop reports true for the
// current position or the end is reached.
func (c *cursor[T, P]) seek(stop func(it *T) bool) {
	c.Reset()
	for !c.end && !stop(&c.it) {
		c.Advance()
	}
}

// finish moves the cursor to the end sentinel.
func (c *cursor[T, P]) finish() {
	c.end = true
}
