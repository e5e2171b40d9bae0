package main

import (
	"fmt"
	"os"

	"github.com/harrison/fstools/internal/cmd"
)

// The chosen option is written to stderr, so scripts can capture it apart
// from the menu on stdout:
//
//	choice=$(selectfile a b c 2>&1 >/dev/tty)
func main() {
	rootCmd := cmd.NewSelectFileCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
