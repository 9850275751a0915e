package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-macro-collections/host"
	"github.com/hasbyte1/go-macro-collections/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	cfgFile string
	verbose bool
}

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	session *host.Session
	styles  styles
}

// NewRootCommand builds the collsh command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	titles := newStyles(os.Stdout, config.ColorAuto)

	root := &cobra.Command{
		Use:   "collsh",
		Short: "Drive scriptable collections from the command line",
		Long: titles.title.Render("collsh") + titles.muted.Render(" - a shell for lists, maps, sets, stacks and queues") + `

Declare collections, call their members with one textual argument and
inspect the results. Clones and spliced lists are stored as @N handles;
First and Find cursors as @<name>:first and @<name>:find.

` + titles.muted.Render("Examples:") + `
  collsh repl               Start an interactive session
  collsh run script.coll    Execute a script file
  collsh types              List types and their members`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/collsh/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every member call")

	root.AddCommand(newReplCommand(opts))
	root.AddCommand(newRunCommand(opts))
	root.AddCommand(newTypesCommand(opts))
	return root
}

// Main runs collsh with the process arguments and returns the exit code.
func Main() int {
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return 1
	}
	return 0
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// setup loads the configuration and builds the session for one command.
func (o *rootOptions) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: o.cfgFile})
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if o.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "collsh", Level: level})
	if cfg.Source != "" {
		logger.Debug("loaded config", "path", cfg.Source)
	}

	session := host.NewSession(
		host.WithDelimiter(cfg.Delimiter),
		host.WithLogger(logger.WithPrefix("collections")),
	)
	return &app{
		cfg:     cfg,
		logger:  logger,
		session: session,
		styles:  newStyles(cmd.OutOrStdout(), cfg.Color),
	}, nil
}
