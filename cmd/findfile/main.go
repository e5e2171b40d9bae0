package main

import (
	"fmt"
	"os"

	"github.com/harrison/fstools/internal/cmd"
)

func main() {
	rootCmd := cmd.NewFindFileCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
