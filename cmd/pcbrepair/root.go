// Package main provides the entry point for the pcbrepair CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pcbrepair.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pcbrepair",
		Short: "Decode and inspect encrypted PCB repair files",
		Long: `pcbrepair decodes encrypted PCB repair files and extracts the board
data they contain: component pin tables, bill of materials, and board
identity. Decoded boards can be rendered as reports, exported as KiCad
footprint libraries, and indexed in a local database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
