package cli

import (
	"github.com/lazypower/actstore/internal/ui"
)

func printHelp(p *ui.Printer) {
	p.Printf("ACTSTORE: %s\n", Version)
	for _, v := range verbs {
		p.Printf("%s%s: %s\n", p.Verb(v.name), v.usage, v.short)
	}
}
