// Package main provides the extract binary, which turns game XML definitions
// into the data modules, script files and icon atlases the planner page loads.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
