// Package main is the entry point for the actstore CLI.
package main

import (
	"os"

	"github.com/lazypower/actstore/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
