package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hasbyte1/go-macro-collections/host"
)

func newReplCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Read lines from standard input and execute them until end of input or
"exit". Errors are printed and the session continues. The prompt is only
shown when standard input is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			in := newInterpreter(a.session, cmd.OutOrStdout(), a.styles)

			var prompt func()
			if isTerminal(cmd.InOrStdin()) {
				prompt = func() { fmt.Fprint(cmd.OutOrStdout(), a.styles.muted.Render(a.cfg.Prompt)) }
			}
			a.logger.Debug("repl started", "interactive", prompt != nil)
			return in.Run(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr(), true, prompt)
		},
	}
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a script file",
		Long: `Execute every line of a script file. The first error stops the script
and is reported with its line number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			in := newInterpreter(a.session, cmd.OutOrStdout(), a.styles)
			if err := in.Run(cmd.Context(), f, cmd.ErrOrStderr(), false, nil); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}
}

func newTypesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the collection and cursor types with their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			for _, t := range describeTypes(a.session.Registry()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					a.styles.title.Render(t.name+":"),
					a.styles.muted.Render(strings.Join(t.members, " ")))
			}
			return nil
		},
	}
}

type typeInfo struct {
	name    string
	members []string
}

// describeTypes lists every registered type and the cursor type its First
// member returns, sorted by name.
func describeTypes(r *host.Registry) []typeInfo {
	seen := make(map[string]bool)
	var out []typeInfo
	add := func(o host.Object) {
		if seen[o.TypeName()] {
			return
		}
		seen[o.TypeName()] = true
		out = append(out, typeInfo{name: o.TypeName(), members: o.Members()})
	}

	for _, name := range r.Types() {
		obj, err := r.New(name)
		if err != nil {
			continue
		}
		add(obj)
		if res, err := obj.GetMember("First", ""); err == nil && res.Kind == host.KindHandle {
			add(res.Handle)
		}
	}
	slices.SortFunc(out, func(a, b typeInfo) int { return strings.Compare(a.name, b.name) })
	return out
}

func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
