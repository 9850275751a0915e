package host

import "errors"

// Sentinel errors returned by the host layer.
var (
	// ErrUnknownMember is returned when a member name is not in the type's
	// member table.
	ErrUnknownMember = errors.New("host: unknown member")

	// ErrUnknownType is returned by [Registry.New] for an unregistered type.
	ErrUnknownType = errors.New("host: unknown type")

	// ErrEmptyTypeName is returned by [Registry.Register] for an empty name.
	ErrEmptyTypeName = errors.New("host: type name must not be empty")

	// ErrNilFactory is returned by [Registry.Register] for a nil factory.
	ErrNilFactory = errors.New("host: factory must not be nil")

	// ErrUnknownVariable is returned when a session has no variable with the
	// given name.
	ErrUnknownVariable = errors.New("host: unknown variable")

	// ErrDuplicateVariable is returned by [Session.Declare] when the name is
	// already taken.
	ErrDuplicateVariable = errors.New("host: variable already declared")

	// ErrReservedName is returned by [Session.Declare] for names starting
	// with the handle prefix "@".
	ErrReservedName = errors.New("host: reserved variable name")

	// ErrNotReleasable is returned by [Session.Release] for objects the
	// holder does not own, such as borrowed cursors.
	ErrNotReleasable = errors.New("host: object is not releasable")

	// ErrMissingArgument explains a FALSE result from a member that needs an
	// argument and was given none.
	ErrMissingArgument = errors.New("host: missing argument")
)
