package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/formstate/cmd/formcheck/commands"
)

// Version information - set during build
var version = "dev"

func main() {
	root := commands.NewRootCmd(version)
	if err := root.Execute(); err != nil {
		// An invalid form has already been reported on stdout.
		if !errors.Is(err, commands.ErrInvalidForm) {
			fmt.Fprintf(os.Stderr, "formcheck: %v\n", err)
		}
		os.Exit(1)
	}
}
