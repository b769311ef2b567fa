package main

import (
	"fmt"
	"os"

	"github.com/bethropolis/codebase-dump/internal/cli"
)

func main() {
	if err := cli.NewDumpCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
