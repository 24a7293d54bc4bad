package main

import (
	"fmt"
	"os"

	"github.com/ndquoc2512/transcript-flow/cmd/transcript-flow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
