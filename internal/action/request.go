// Package action turns stored values into commands to run. Resolving a
// command and executing it are separate steps: a Resolver never starts a
// process, an Executor never reads the store.
package action

import "fmt"

// Kind is the way a stored value is reinterpreted.
type Kind int

const (
	Open Kind = iota + 1 // hand the value to the default-handler launcher
	Run                  // run the value as a shell command line
	Edit                 // open the value as a path in the configured editor
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Run:
		return "run"
	case Edit:
		return "edit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Request describes a side effect to perform. Command is a complete
// shell command line.
type Request struct {
	Kind    Kind
	Key     string
	Command string
}
