// Command themegen prints stylesheet color tokens for a palette.
package main

import (
	"os"

	"github.com/solutivemind/themegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
