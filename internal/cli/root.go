package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazypower/actstore/internal/action"
	"github.com/lazypower/actstore/internal/config"
	"github.com/lazypower/actstore/internal/logging"
	"github.com/lazypower/actstore/internal/store"
	"github.com/lazypower/actstore/internal/ui"
)

// EntryStore is the persistence the verbs work against.
type EntryStore interface {
	Exists(key string) (bool, error)
	Get(key string) (*store.Entry, error)
	List() ([]store.Entry, error)
	Set(key, value string) (store.SetResult, error)
	SetNote(key, note string) error
	Delete(key string) error
}

// App carries the collaborators of a single invocation. Store may be left
// nil, in which case OpenStore is called the first time a verb needs it.
type App struct {
	Store     EntryStore
	OpenStore func() (EntryStore, error)
	Executor  action.Executor
	Printer   *ui.Printer
	Log       *zap.Logger
	Actions   config.ActionsConfig
}

func (a *App) store() (EntryStore, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	if a.OpenStore == nil {
		return nil, errors.New("no store configured")
	}
	s, err := a.OpenStore()
	if err != nil {
		return nil, err
	}
	a.Store = s
	return s, nil
}

func (a *App) resolver() (*action.Resolver, error) {
	s, err := a.store()
	if err != nil {
		return nil, err
	}
	return action.NewResolver(s, action.Options{
		Opener: a.Actions.Opener,
		Editor: a.Actions.Editor,
	}), nil
}

// NewRootCmd builds the verb tree for app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:                "actstore <verb> [args...]",
		Short:              "Personal key-value store whose values can be run, opened, or edited",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printHelp(app.Printer)
				return nil
			}
			return &InvalidCommandError{Verb: args[0]}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpFunc(func(*cobra.Command, []string) { printHelp(app.Printer) })
	root.SetOut(app.Printer.Out)
	root.SetErr(app.Printer.Err)

	for _, v := range verbs {
		cmd := v.command(app)
		if v.name == "help" {
			root.SetHelpCommand(cmd)
			continue
		}
		root.AddCommand(cmd)
	}
	return root
}

// Run dispatches args (without the program name) and returns the exit code.
func Run(ctx context.Context, app *App, args []string) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	if app.Log == nil {
		app.Log = zap.NewNop()
	}
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var invalid *InvalidCommandError
	if errors.As(err, &invalid) {
		app.Printer.Errorf("error: invalid command")
		printHelp(app.Printer)
	} else {
		app.Printer.Errorf("error: %v", err)
	}
	app.Log.Debug("invocation failed", zap.Strings("args", args), zap.Error(err))
	return ExitCode(err)
}

// Execute wires the real collaborators from configuration and runs the
// process arguments.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitConfigError
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitConfigError
	}
	defer log.Sync()

	var db *store.DB
	app := &App{
		Executor: action.NewShellExecutor(cfg.Actions.Shell, log),
		Printer:  ui.NewPrinter(os.Stdout, os.Stderr, cfg.UI.Color),
		Log:      log,
		Actions:  cfg.Actions,
		OpenStore: func() (EntryStore, error) {
			path, err := cfg.DBPath()
			if err != nil {
				return nil, &store.StorageError{Op: "resolve db path", Err: err}
			}
			db, err = store.Open(path, log)
			if err != nil {
				return nil, err
			}
			return db, nil
		},
	}

	code := Run(context.Background(), app, os.Args[1:])
	if db != nil {
		if err := db.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}
	return code
}
