package cli

import (
	"errors"

	"github.com/lazypower/actstore/internal/action"
)

// Exit codes. A missing key is a normal negative result and exits 0.
const (
	ExitSuccess     = 0 // Success, including key not found
	ExitError       = 1 // Storage or other runtime failure
	ExitUsage       = 2 // Unrecognized verb or wrong argument count
	ExitConfigError = 3 // Required configuration missing or unreadable
)

// InvalidCommandError reports an unrecognized verb or a verb used with the
// wrong number of arguments.
type InvalidCommandError struct {
	Verb string
}

func (e *InvalidCommandError) Error() string {
	if e.Verb == "" {
		return "invalid command"
	}
	return "invalid command: " + e.Verb
}

// ExitCode maps an invocation error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invalid *InvalidCommandError
	if errors.As(err, &invalid) {
		return ExitUsage
	}
	var cfgErr *action.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}
	return ExitError
}
