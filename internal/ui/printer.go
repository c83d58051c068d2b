// Package ui renders entries and messages for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/lazypower/actstore/internal/store"
)

// Printer writes user-facing output: results to Out, problems to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	color bool
	st    styles
}

// NewPrinter creates a Printer. colorMode is "auto" or "never".
func NewPrinter(out, errOut io.Writer, colorMode string) *Printer {
	return &Printer{
		Out:   out,
		Err:   errOut,
		color: ColorEnabled(colorMode, out),
		st:    newStyles(out),
	}
}

// FormatEntry renders e as "key: value", or "key: value  # note" when the
// entry has a note.
func (p *Printer) FormatEntry(e store.Entry) string {
	key, value, note := e.Key, e.Value, e.Note
	if p.color {
		key = p.st.Key.Render(key)
		value = p.st.Value.Render(value)
		note = p.st.Note.Render(note)
	}
	if e.Note == "" {
		return key + ": " + value
	}
	return key + ": " + value + "  # " + note
}

// Entry prints one entry line.
func (p *Printer) Entry(e store.Entry) {
	fmt.Fprintln(p.Out, p.FormatEntry(e))
}

// Entries prints one line per entry, in the order given.
func (p *Printer) Entries(entries []store.Entry) {
	for _, e := range entries {
		p.Entry(e)
	}
}

// Verb renders a command name in the key color.
func (p *Printer) Verb(name string) string {
	if p.color {
		return p.st.Key.Render(name)
	}
	return name
}

// Println writes a message line to Out.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.Out, msg)
}

// Printf writes a formatted message to Out.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

// Errorf writes a formatted message line to Err.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.Err, format+"\n", args...)
}
