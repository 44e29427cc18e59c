package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "getgas-utils",
	Short: "GetGas utilities",
	Long:  "Various utilities for operating GetGas including address checks and balance lookups against the configured chains",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
