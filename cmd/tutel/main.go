// Package main is the entry point for the tutel CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aidanlsb/tutel/internal/cli"
	"github.com/aidanlsb/tutel/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
		}
		os.Exit(1)
	}
}
