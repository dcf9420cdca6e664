// Package main provides the CLI for mulscan.
package main

import (
	"os"

	"github.com/leapstack-labs/mulscan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
