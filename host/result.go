package host

import (
	"fmt"
	"strconv"
)

// Kind identifies the type of the value held by a [Result].
type Kind int

// Result kinds.
const (
	KindBool   Kind = iota // TRUE or FALSE
	KindInt                // decimal integer
	KindString             // plain text
	KindHandle             // object stored in the session
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindHandle:
		return "handle"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Result is the output slot of a member invocation. Only the field matching
// Kind is meaningful.
type Result struct {
	Kind   Kind
	Bool   bool
	Int    int
	Str    string
	Handle Object

	// Ref is the session variable that holds Handle, set by [Session.Invoke].
	Ref string

	// Err explains a FALSE result produced by a failed operation.
	Err error
}

// BoolResult returns a boolean Result.
func BoolResult(b bool) Result { return Result{Kind: KindBool, Bool: b} }

// IntResult returns an integer Result.
func IntResult(n int) Result { return Result{Kind: KindInt, Int: n} }

// StringResult returns a string Result.
func StringResult(s string) Result { return Result{Kind: KindString, Str: s} }

// HandleResult returns a Result holding a new object.
func HandleResult(o Object) Result { return Result{Kind: KindHandle, Handle: o} }

// Failure returns a FALSE Result explained by err.
func Failure(err error) Result { return Result{Kind: KindBool, Err: err} }

// OK reports whether the result is anything other than FALSE.
func (r Result) OK() bool {
	return r.Kind != KindBool || r.Bool
}

// String renders the result the way the host prints it: TRUE, FALSE, a
// decimal integer, the string itself, or a handle description.
func (r Result) String() string {
	switch r.Kind {
	case KindInt:
		return strconv.Itoa(r.Int)
	case KindString:
		return r.Str
	case KindHandle:
		if r.Ref == "" {
			return fmt.Sprintf("<%s handle>", r.Handle.TypeName())
		}
		return fmt.Sprintf("<%s handle %s>", r.Handle.TypeName(), r.Ref)
	}
	if r.Bool {
		return "TRUE"
	}
	return "FALSE"
}
