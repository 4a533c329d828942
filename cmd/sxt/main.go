// Package main is the entry point for the sxt CLI tool.
package main

import (
	"os"

	"github.com/mlanders/sextant/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
