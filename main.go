package main

import (
	"fmt"
	"os"

	"github.com/dimerciabaruani-tech/economics-quiz-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		fmt.Fprintln(os.Stderr, "Please report this issue.")
		os.Exit(1)
	}
}
