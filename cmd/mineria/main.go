// Package main is the entry point for the mineria CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mineria",
	Short: "Mineria tabletop character assistant",
	Long:  `Mineria rolls dice, walks characters through stat-roll creation, and manages the saved roster.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(charCmd)
}
