package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pcblab/pcbrepair/internal/config"
	"github.com/pcblab/pcbrepair/internal/database"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards stored in the board index",
		Long: `List prints every board recorded by previous scans, most recently
scanned first.

Examples:
  # List indexed boards
  pcbrepair list

  # Use a specific index directory
  pcbrepair list --db-dir /srv/boards/index`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	cmd.Flags().String("db-dir", "",
		"Board index directory (default: XDG data directory)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	setupLogger(cmd)

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open board index (run a scan first): %w", err)
	}
	defer db.Close()

	boards, err := db.ListBoards(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list boards: %w", err)
	}
	if len(boards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No boards indexed yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tREVISION\tPINS\tCOMPONENTS\tSCANNED\tFILE")
	for _, b := range boards {
		scanned := ""
		if !b.ScannedAt.IsZero() {
			scanned = b.ScannedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			b.BoardModel, b.Revision, b.PinCount, b.ComponentCount, scanned, b.File)
	}
	return w.Flush()
}
