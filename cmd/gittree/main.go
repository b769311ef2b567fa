package main

import (
	"fmt"
	"os"

	"github.com/bethropolis/codebase-dump/internal/cli"
)

func main() {
	if err := cli.NewTreeCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
