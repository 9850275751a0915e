package host

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hasbyte1/go-macro-collections/collections"
)

// Object is a value the host can hold in a variable and invoke members on.
type Object interface {
	// TypeName returns the host type name, e.g. "list" or "mapiterator".
	TypeName() string

	// Members returns the member names in table order.
	Members() []string

	// GetMember invokes a member with an optional argument. A failed
	// operation is a FALSE Result, not an error; the error is reserved for
	// names outside the member table.
	GetMember(member, arg string) (Result, error)

	// String renders the object for printing.
	String() string

	// FromString applies textual assignment and reports success.
	FromString(text string) bool
}

// Releaser is implemented by objects whose holder may release them.
type Releaser interface {
	Releasable() bool
}

// memberTable maps case-insensitive member names onto a closed enum whose
// values are the table positions.
type memberTable[M ~int] struct {
	names  []string
	byName map[string]M
}

func newMemberTable[M ~int](names ...string) *memberTable[M] {
	t := &memberTable[M]{names: names, byName: make(map[string]M, len(names))}
	for i, name := range names {
		t.byName[strings.ToLower(name)] = M(i)
	}
	return t
}

func (t *memberTable[M]) lookup(name string) (M, bool) {
	m, ok := t.byName[strings.ToLower(name)]
	return m, ok
}

// Names returns the member names in declaration order.
func (t *memberTable[M]) Names() []string { return slices.Clone(t.names) }

func unknownMember(o Object, member string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownMember, o.TypeName(), member)
}

var (
	_ Object = (*List)(nil)
	_ Object = (*Map)(nil)
	_ Object = (*Set)(nil)
	_ Object = (*Buffer)(nil)
	_ Object = (*Iterator[*collections.ListIterator])(nil)
	_ Object = (*Iterator[*collections.MapIterator])(nil)
	_ Object = (*Iterator[*collections.SetIterator])(nil)

	_ Releaser = (*List)(nil)
	_ Releaser = (*Iterator[*collections.ListIterator])(nil)
)
