// Package main is the entry point for the quizctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/black301/quiz-system-client/cmd/quizctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
