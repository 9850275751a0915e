package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/hasbyte1/go-macro-collections/host"
)

var (
	// ErrSyntax is returned for lines that are neither a built-in command nor
	// a member call.
	ErrSyntax = errors.New("cli: syntax error")

	// errQuit ends a REPL.
	errQuit = errors.New("quit")
)

// maxLineSize bounds a single script or REPL line.
const maxLineSize = 16 << 20

// interpreter executes collsh lines against a [host.Session].
type interpreter struct {
	session *host.Session
	out     io.Writer
	styles  styles
}

// newInterpreter returns an interpreter that prints results to out.
func newInterpreter(session *host.Session, out io.Writer, st styles) *interpreter {
	return &interpreter{session: session, out: out, styles: st}
}

// Exec executes one line. Blank lines and comments do nothing. A FALSE
// result is printed, not returned as an error.
func (in *interpreter) Exec(line string) error {
	words, err := shell.Fields(line, in.expand)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if len(words) == 0 {
		return nil
	}

	switch words[0] {
	case "declare":
		if err := arity(words, 3, "declare <name> <type>"); err != nil {
			return err
		}
		return in.session.Declare(words[1], words[2])
	case "set":
		if err := arity(words, 3, "set <name> <text>"); err != nil {
			return err
		}
		ok, err := in.session.Assign(words[1], words[2])
		if err != nil {
			return err
		}
		in.print(host.BoolResult(ok))
		return nil
	case "print":
		if err := arity(words, 2, "print <name>"); err != nil {
			return err
		}
		s, err := in.session.Render(words[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, in.styles.value.Render(s))
		return nil
	case "release":
		if err := arity(words, 2, "release <name>"); err != nil {
			return err
		}
		return in.session.Release(words[1])
	case "delete":
		if err := arity(words, 2, "delete <name>"); err != nil {
			return err
		}
		return in.session.Delete(words[1])
	case "vars":
		for _, name := range in.session.Names() {
			obj, err := in.session.Lookup(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(in.out, "%s %s\n", name, in.styles.muted.Render(obj.TypeName()))
		}
		return nil
	case "exit", "quit":
		return errQuit
	}
	return in.invoke(words)
}

// Run executes every line read from r. With keepGoing, errors are printed to
// errOut and execution continues; otherwise the first error stops the run
// and is returned with its line number. prompt, when non-nil, is called
// before each line is read.
func (in *interpreter) Run(ctx context.Context, r io.Reader, errOut io.Writer, keepGoing bool, prompt func()) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; ; n++ {
		if prompt != nil {
			prompt()
		}
		if !sc.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := in.Exec(sc.Text())
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		case keepGoing:
			fmt.Fprintln(errOut, in.styles.err.Render("error: ")+err.Error())
		default:
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

func (in *interpreter) invoke(words []string) error {
	name, member, ok := strings.Cut(words[0], ".")
	if !ok || name == "" || member == "" {
		return fmt.Errorf("%w: unknown command %q", ErrSyntax, words[0])
	}
	if len(words) > 2 {
		return fmt.Errorf("%w: %s takes one argument; quote it", ErrSyntax, words[0])
	}
	arg := ""
	if len(words) == 2 {
		arg = words[1]
	}

	res, err := in.session.Invoke(name, member, arg)
	if err != nil {
		return err
	}
	in.print(res)
	return nil
}

func (in *interpreter) print(res host.Result) {
	s := res.String()
	switch {
	case res.Kind == host.KindHandle:
		s = in.styles.handle.Render(s)
	case res.Kind == host.KindBool && res.Bool:
		s = in.styles.success.Render(s)
	case res.Kind == host.KindBool:
		s = in.styles.warning.Render(s)
	default:
		s = in.styles.value.Render(s)
	}
	fmt.Fprintln(in.out, s)
}

// expand resolves $name to the printed form of a session variable.
func (in *interpreter) expand(name string) string {
	s, err := in.session.Render(name)
	if err != nil {
		return ""
	}
	return s
}

func arity(words []string, n int, usage string) error {
	if len(words) != n {
		return fmt.Errorf("%w: usage: %s", ErrSyntax, usage)
	}
	return nil
}
