package action

import (
	"errors"
	"os"
	"strings"

	"github.com/lazypower/actstore/internal/config"
	"github.com/lazypower/actstore/internal/store"
)

// ErrEditorNotConfigured means neither ACT_EDITOR nor the editor config
// key is set.
var ErrEditorNotConfigured = errors.New("missing " + config.EnvEditor + " environment variable")

// ConfigError reports configuration an action needs but does not have.
type ConfigError struct {
	Kind Kind
	Err  error
}

func (e *ConfigError) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Lookup fetches a single entry by key, returning nil when absent.
type Lookup interface {
	Get(key string) (*store.Entry, error)
}

// Options configures a Resolver.
type Options struct {
	Opener string // launcher command, e.g. "xdg-open"
	Editor string // editor command, may include arguments
	Home   string // expands a leading "~" in open and edit values
}

// Resolver maps a key and a Kind to a Request.
type Resolver struct {
	lookup Lookup
	opts   Options
}

// NewResolver creates a Resolver reading entries through lookup. An empty
// opts.Home is filled from the user's home directory.
func NewResolver(lookup Lookup, opts Options) *Resolver {
	if opts.Home == "" {
		opts.Home, _ = os.UserHomeDir()
	}
	return &Resolver{lookup: lookup, opts: opts}
}

// ResolveOpen returns a request handing the stored value to the opener.
func (r *Resolver) ResolveOpen(key string) (*Request, error) {
	return r.Resolve(Open, key)
}

// ResolveRun returns a request running the stored value verbatim.
func (r *Resolver) ResolveRun(key string) (*Request, error) {
	return r.Resolve(Run, key)
}

// ResolveEdit returns a request opening the stored value in the editor.
func (r *Resolver) ResolveEdit(key string) (*Request, error) {
	return r.Resolve(Edit, key)
}

// Resolve fetches key and builds the request for kind. It returns
// store.ErrNotFound when the key has no entry, and a *ConfigError when an
// edit is asked for without an editor.
func (r *Resolver) Resolve(kind Kind, key string) (*Request, error) {
	e, err := r.lookup.Get(key)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, store.ErrNotFound
	}

	req := &Request{Kind: kind, Key: key}
	switch kind {
	case Run:
		req.Command = e.Value
	case Open:
		req.Command = join(r.opts.Opener, Quote(expandHome(e.Value, r.opts.Home)))
	case Edit:
		editor := strings.TrimSpace(r.opts.Editor)
		if editor == "" {
			return nil, &ConfigError{Kind: Edit, Err: ErrEditorNotConfigured}
		}
		req.Command = join(editor, Quote(expandHome(e.Value, r.opts.Home)))
	default:
		return nil, errors.New("unknown action kind " + kind.String())
	}
	return req, nil
}

func join(program, arg string) string {
	program = strings.TrimSpace(program)
	if program == "" {
		return arg
	}
	return program + " " + arg
}
