package main

// This is an interpreter for propositional-logic expressions written in Go.

import (
	"fmt"
	"os"

	"github.com/ltungv/proplog/cmd/proplog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
