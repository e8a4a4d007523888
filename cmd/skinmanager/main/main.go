package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/skinmanager/cmd/skinmanager"
	"github.com/arthur-debert/skinmanager/pkg/style"
)

func main() {
	rootCmd := skinmanager.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
