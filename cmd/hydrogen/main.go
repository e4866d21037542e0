// Package main provides the hydrogen CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/hydrogen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
