package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazypower/actstore/internal/action"
	"github.com/lazypower/actstore/internal/store"
)

// verb is one row of the dispatch table. run receives the tokens after the
// verb rejoined by JoinArgs.
type verb struct {
	name      string
	aliases   []string
	usage     string
	short     string
	takesArgs bool
	run       func(app *App, cmd *cobra.Command, arg string) error
}

// verbs is in help order.
var verbs []verb

func init() {
	verbs = []verb{
		{name: "set", aliases: []string{"save", "sv", "s"}, usage: " <key> <value>", short: "sets a value", takesArgs: true, run: runSet},
		{name: "get", aliases: []string{"show", "g"}, usage: " <key>", short: "prints a value", takesArgs: true, run: runGet},
		{name: "delete", aliases: []string{"del", "d", "unset", "rm", "remove", "rem"}, usage: " <key>", short: "deletes a value", takesArgs: true, run: runDelete},
		{name: "ls", short: "show all entries", run: runList},
		{name: "note", usage: " <key> <note>", short: "sets a note for the key", takesArgs: true, run: runNote},
		{name: "open", aliases: []string{"url"}, usage: " <key>", short: "opens value with the system default handler", takesArgs: true, run: actionRunner(action.Open)},
		{name: "run", usage: " <key>", short: "runs value as shell command", takesArgs: true, run: actionRunner(action.Run)},
		{name: "edit", usage: " <key>", short: "treats value as path to text file to open in ACT_EDITOR", takesArgs: true, run: actionRunner(action.Edit)},
		{name: "help", aliases: []string{"h"}, short: "this help message", run: runHelp},
		{name: "version", aliases: []string{"ver", "v"}, short: "print only the version", run: runVersion},
	}
}

func (v verb) command(app *App) *cobra.Command {
	return &cobra.Command{
		Use:                v.name + v.usage,
		Aliases:            v.aliases,
		Short:              v.short,
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if v.takesArgs != (len(args) > 0) {
				return &InvalidCommandError{Verb: cmd.CalledAs()}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.run(app, cmd, JoinArgs(args))
		},
	}
}

func runSet(app *App, cmd *cobra.Command, arg string) error {
	key, value := SplitFirstWord(arg)
	if key == "" {
		return &InvalidCommandError{Verb: cmd.CalledAs()}
	}
	s, err := app.store()
	if err != nil {
		return err
	}
	res, err := s.Set(key, value)
	if err != nil {
		return err
	}
	if res == store.Updated {
		app.Printer.Println("Updating existing entry...")
	} else {
		app.Printer.Println("Saved.")
	}
	return nil
}

func runGet(app *App, cmd *cobra.Command, key string) error {
	s, err := app.store()
	if err != nil {
		return err
	}
	e, err := s.Get(key)
	if err != nil {
		return err
	}
	if e == nil {
		app.Printer.Errorf("Key %s not found.", key)
		return nil
	}
	app.Printer.Entry(*e)
	return nil
}

func runDelete(app *App, cmd *cobra.Command, key string) error {
	s, err := app.store()
	if err != nil {
		return err
	}
	err = s.Delete(key)
	if errors.Is(err, store.ErrNotFound) {
		app.Printer.Printf("Key %s not found.\n", key)
		return nil
	}
	if err != nil {
		return err
	}
	app.Printer.Printf("Dropping key %s\n", key)
	return nil
}

func runList(app *App, cmd *cobra.Command, _ string) error {
	s, err := app.store()
	if err != nil {
		return err
	}
	entries, err := s.List()
	if err != nil {
		return err
	}
	app.Printer.Entries(entries)
	return nil
}

func runNote(app *App, cmd *cobra.Command, arg string) error {
	key, note := SplitFirstWord(arg)
	if key == "" {
		return &InvalidCommandError{Verb: cmd.CalledAs()}
	}
	s, err := app.store()
	if err != nil {
		return err
	}
	err = s.SetNote(key, note)
	if errors.Is(err, store.ErrNotFound) {
		app.Printer.Println("Entry not found")
		return nil
	}
	if err != nil {
		return err
	}
	app.Printer.Println("Updating note...")
	return nil
}

// actionRunner resolves the key into a request of the given kind and
// hands it to the executor. A failing subprocess is reported but does
// not fail the invocation.
func actionRunner(kind action.Kind) func(*App, *cobra.Command, string) error {
	return func(app *App, cmd *cobra.Command, key string) error {
		r, err := app.resolver()
		if err != nil {
			return err
		}
		req, err := r.Resolve(kind, key)
		if errors.Is(err, store.ErrNotFound) {
			app.Printer.Errorf("Key %s not found.", key)
			return nil
		}
		if err != nil {
			return err
		}
		if err := app.Executor.Execute(cmd.Context(), req); err != nil {
			app.Log.Debug("action failed", zap.Stringer("kind", kind), zap.String("key", key), zap.Error(err))
			app.Printer.Errorf("warning: %v", err)
		}
		return nil
	}
}

func runHelp(app *App, _ *cobra.Command, _ string) error {
	printHelp(app.Printer)
	return nil
}

func runVersion(app *App, _ *cobra.Command, _ string) error {
	app.Printer.Println(Version)
	return nil
}
