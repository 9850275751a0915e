package host

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// HandlePrefix starts the name of every variable created for a handle.
const HandlePrefix = "@"

// slotSeparator joins an owner name and a cursor slot in a borrowed handle
// name such as "@l:first".
const slotSeparator = ":"

// Session holds named objects: variables declared by the user and handles
// returned by member calls. All methods are safe for concurrent use; the
// objects themselves are only ever touched with the session lock held.
//
// Owned handles (clones and splices) get a fresh "@N" name and live until
// released. Borrowed cursors from First and Find get one fixed name per
// owner and slot, "@<owner>:first" and "@<owner>:find", which each call
// overwrites. Deleting or releasing the owner drops its borrowed cursors.
type Session struct {
	mu         sync.RWMutex
	vars       map[string]Object
	nextHandle int

	types     *Registry
	delimiter string
	logger    *log.Logger
}

// Option configures a [Session].
type Option func(*Session)

// WithRegistry sets the registry used by [Session.Declare].
func WithRegistry(r *Registry) Option {
	return func(s *Session) { s.types = r }
}

// WithDelimiter sets the delimiter of every list created by
// [Session.Declare].
func WithDelimiter(d string) Option {
	return func(s *Session) { s.delimiter = d }
}

// WithLogger sets the session logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates an empty Session backed by [NewDefaultRegistry].
func NewSession(opts ...Option) *Session {
	s := &Session{
		vars:   make(map[string]Object),
		types:  NewDefaultRegistry(),
		logger: log.NewWithOptions(io.Discard, log.Options{Prefix: "collections"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the session's type registry.
func (s *Session) Registry() *Registry { return s.types }

// Declare creates a variable holding a new object of typeName.
func (s *Session) Declare(name, typeName string) error {
	if name == "" || strings.HasPrefix(name, HandlePrefix) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	obj, err := s.types.New(typeName)
	if err != nil {
		return err
	}
	if l, ok := obj.(*List); ok && s.delimiter != "" {
		l.list.SetDelimiter(s.delimiter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.vars[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
	}
	s.vars[name] = obj
	s.logger.Debug("declare", "var", name, "type", obj.TypeName())
	return nil
}

// Lookup returns the object held by name.
func (s *Session) Lookup(name string) (Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(name)
}

// Invoke calls member on the object held by name. A handle result is stored
// in the session and its variable name is reported in [Result.Ref].
func (s *Session) Invoke(name, member, arg string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, err := s.lookup(name)
	if err != nil {
		return Failure(nil), err
	}
	res, err := obj.GetMember(member, arg)
	if err != nil {
		s.logger.Warn("member call rejected", "var", name, "type", obj.TypeName(), "member", member)
		return res, err
	}
	if res.Kind == KindHandle {
		if owned(res.Handle) {
			res.Ref = s.storeHandle(res.Handle)
		} else {
			res.Ref = s.storeBorrowed(name, member, res.Handle)
		}
	}

	kv := []any{"var", name, "type", obj.TypeName(), "member", member, "arg", arg, "kind", res.Kind}
	if res.Err != nil {
		kv = append(kv, "err", res.Err)
	}
	s.logger.Debug("invoke", kv...)
	return res, nil
}

// Assign applies textual assignment to the object held by name and returns
// the object's own success report.
func (s *Session) Assign(name, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	ok := obj.FromString(text)
	s.logger.Debug("assign", "var", name, "type", obj.TypeName(), "ok", ok)
	return ok, nil
}

// Render returns the textual form of the object held by name.
func (s *Session) Render(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	return obj.String(), nil
}

// Release drops a handle the holder owns: a cloned cursor or a spliced list.
// Anything else returns [ErrNotReleasable] and stays in the session.
func (s *Session) Release(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, err := s.lookup(name)
	if err != nil {
		return err
	}
	if !owned(obj) {
		s.logger.Warn("release refused", "var", name, "type", obj.TypeName())
		return fmt.Errorf("%w: %s (%s)", ErrNotReleasable, name, obj.TypeName())
	}
	s.drop(name)
	s.logger.Debug("release", "var", name, "type", obj.TypeName())
	return nil
}

// Delete drops the variable name regardless of ownership, together with the
// borrowed cursors it handed out.
func (s *Session) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookup(name); err != nil {
		return err
	}
	s.drop(name)
	return nil
}

// Names returns every variable name in sorted order.
func (s *Session) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (s *Session) lookup(name string) (Object, error) {
	obj, ok := s.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return obj, nil
}

func (s *Session) storeHandle(obj Object) string {
	s.nextHandle++
	ref := HandlePrefix + strconv.Itoa(s.nextHandle)
	s.vars[ref] = obj
	return ref
}

// storeBorrowed stores a borrowed cursor under its owner's slot name,
// replacing the cursor stored by the previous call.
func (s *Session) storeBorrowed(owner, member string, obj Object) string {
	ref := slotPrefix(owner) + strings.ToLower(member)
	s.vars[ref] = obj
	return ref
}

// drop removes name and every borrowed cursor stored for it.
func (s *Session) drop(name string) {
	delete(s.vars, name)
	prefix := slotPrefix(name)
	for ref := range s.vars {
		if strings.HasPrefix(ref, prefix) && !strings.Contains(ref[len(prefix):], slotSeparator) {
			delete(s.vars, ref)
		}
	}
}

func slotPrefix(owner string) string {
	return HandlePrefix + owner + slotSeparator
}

// owned reports whether the holder of obj may release it.
func owned(obj Object) bool {
	r, ok := obj.(Releaser)
	return ok && r.Releasable()
}
