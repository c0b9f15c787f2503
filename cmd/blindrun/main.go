// Package main is the entry point for the blindrun CLI.
package main

import (
	"os"

	"github.com/blindrun/blindrun/cmd/blindrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
